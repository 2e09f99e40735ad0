// Command typedmap validates a JSON document against a YAML schema
// description.
//
//	typedmap -schema schema.yaml -data data.json [-quiet]
//
// Exit status is 0 when the document conforms, 1 on a defect or read/parse
// failure, 2 on usage errors. The defect is printed to stderr unless -quiet
// is set.
package main

import (
	"flag"
	"fmt"
	"os"

	typedmap "github.com/reoring/typedmap"
	"github.com/reoring/typedmap/yamlschema"
)

func main() {
	var schemaPath, dataPath string
	var quiet bool
	flag.StringVar(&schemaPath, "schema", "", "YAML schema description file")
	flag.StringVar(&dataPath, "data", "", "JSON document to validate")
	flag.BoolVar(&quiet, "quiet", false, "suppress the defect message")
	flag.Parse()
	if schemaPath == "" || dataPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	sb, err := os.ReadFile(schemaPath)
	if err != nil {
		fatalf("read schema: %v", err)
	}
	rec, err := yamlschema.Import(sb)
	if err != nil {
		fatalf("import schema: %v", err)
	}
	db, err := os.ReadFile(dataPath)
	if err != nil {
		fatalf("read data: %v", err)
	}

	ok, err := typedmap.ValidateJSON(db, rec)
	if err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
