// Package yamlschema imports record schemas from a YAML description
// document. A document declares one or more named records; field and record
// order follow the document, so first-defect reporting stays deterministic.
//
//	Person:
//	  name: string
//	  age: integer
//	  nick: {type: string, optional: true}
//	Company:
//	  name: string
//	  employees: integer
//	Entity:
//	  entity: {union: [Person, Company]}
//
// Type expressions are scalar kind names (string, integer, boolean, float,
// null, any), bare record names as references, or the composite forms
// {array: T}, {map: T}, {union: [T, ...]}, {literal: [v, ...]} and
// {nullable: T}. A field expression may wrap its type as
// {type: T, optional: true}. References may point forward or at the
// enclosing record; dangling names fail at import time.
package yamlschema

import (
	"fmt"

	typedmap "github.com/reoring/typedmap"
	"gopkg.in/yaml.v3"
)

// Import parses the document and returns the first declared record with all
// references resolved.
func Import(data []byte) (*typedmap.Record, error) {
	records, order, err := parse(data)
	if err != nil {
		return nil, err
	}
	return records[order[0]], nil
}

// ImportAll parses the document and returns every declared record by name,
// with all references resolved.
func ImportAll(data []byte) (map[string]*typedmap.Record, error) {
	records, _, err := parse(data)
	return records, err
}

func parse(data []byte) (map[string]*typedmap.Record, []string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, fmt.Errorf("yamlschema: empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("yamlschema: document must map record names to field declarations")
	}

	reg := typedmap.NewRegistry()
	records := map[string]*typedmap.Record{}
	var order []string
	for i := 0; i < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if _, dup := records[name]; dup {
			return nil, nil, fmt.Errorf("yamlschema: record %q declared twice", name)
		}
		rec, err := importRecord(name, resolveAlias(root.Content[i+1]))
		if err != nil {
			return nil, nil, err
		}
		records[name] = rec
		order = append(order, name)
		reg.Register(name, rec)
	}
	if len(order) == 0 {
		return nil, nil, fmt.Errorf("yamlschema: document declares no records")
	}
	if err := reg.Resolve(); err != nil {
		return nil, nil, err
	}
	return records, order, nil
}

func importRecord(name string, body *yaml.Node) (*typedmap.Record, error) {
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yamlschema: record %q must map field names to type expressions", name)
	}
	rec := &typedmap.Record{Name: name}
	for i := 0; i < len(body.Content); i += 2 {
		fname := body.Content[i].Value
		fs, optional, err := importField(resolveAlias(body.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("yamlschema: record %q, field %q: %w", name, fname, err)
		}
		rec.Fields = append(rec.Fields, typedmap.Field{Name: fname, Type: fs, Optional: optional})
	}
	return rec, nil
}

// importField accepts either a bare type expression or the wrapped
// {type: T, optional: bool} form.
func importField(node *yaml.Node) (typedmap.Schema, bool, error) {
	if node.Kind == yaml.MappingNode {
		if tn := mappingValue(node, "type"); tn != nil {
			s, err := importType(resolveAlias(tn))
			if err != nil {
				return nil, false, err
			}
			optional := false
			if on := mappingValue(node, "optional"); on != nil {
				if err := on.Decode(&optional); err != nil {
					return nil, false, fmt.Errorf("optional must be a boolean: %w", err)
				}
			}
			return s, optional, nil
		}
	}
	s, err := importType(node)
	return s, false, err
}

func importType(node *yaml.Node) (typedmap.Schema, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Value {
		case "string":
			return &typedmap.Primitive{Kind: typedmap.KindString}, nil
		case "integer", "int":
			return &typedmap.Primitive{Kind: typedmap.KindInt}, nil
		case "boolean", "bool":
			return &typedmap.Primitive{Kind: typedmap.KindBool}, nil
		case "float", "number":
			return &typedmap.Primitive{Kind: typedmap.KindFloat}, nil
		case "null":
			return &typedmap.Primitive{Kind: typedmap.KindNull}, nil
		case "any":
			return &typedmap.Any{}, nil
		}
		// anything else names a record declared in this document
		return &typedmap.Ref{Name: node.Value}, nil

	case yaml.MappingNode:
		if tn := mappingValue(node, "array"); tn != nil {
			elem, err := importType(tn)
			if err != nil {
				return nil, err
			}
			return &typedmap.Sequence{Elem: elem}, nil
		}
		if tn := mappingValue(node, "map"); tn != nil {
			val, err := importType(tn)
			if err != nil {
				return nil, err
			}
			return &typedmap.Mapping{Value: val}, nil
		}
		if tn := mappingValue(node, "union"); tn != nil {
			branches, err := importTypeList(resolveAlias(tn))
			if err != nil {
				return nil, err
			}
			return &typedmap.Union{Branches: branches}, nil
		}
		if tn := mappingValue(node, "nullable"); tn != nil {
			inner, err := importType(tn)
			if err != nil {
				return nil, err
			}
			return &typedmap.Union{Branches: []typedmap.Schema{
				inner,
				&typedmap.Primitive{Kind: typedmap.KindNull},
			}}, nil
		}
		if tn := mappingValue(node, "literal"); tn != nil {
			tn = resolveAlias(tn)
			if tn.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("literal expects a sequence of constants")
			}
			allowed := make([]any, 0, len(tn.Content))
			for _, c := range tn.Content {
				var v any
				if err := c.Decode(&v); err != nil {
					return nil, err
				}
				allowed = append(allowed, v)
			}
			return &typedmap.Literal{Allowed: allowed}, nil
		}
		return nil, fmt.Errorf("unknown composite type expression (want array/map/union/literal/nullable)")
	}
	return nil, fmt.Errorf("unsupported type expression")
}

func importTypeList(node *yaml.Node) ([]typedmap.Schema, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("union expects a sequence of type expressions")
	}
	out := make([]typedmap.Schema, 0, len(node.Content))
	for _, c := range node.Content {
		s, err := importType(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
