package i18n

import "fmt"

// Translator retrieves localized messages for defect codes. data provides
// optional metadata to embed in the message (for example, "key" or
// "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_key":
			return fmt.Sprintf("必須キー %q がありません", data["key"])
		case "type_mismatch":
			return fmt.Sprintf("キー %q の値は %s である必要がありますが %s でした", data["key"], data["expected"], data["actual"])
		case "invalid_schema":
			return "スキーマはレコードである必要があります"
		}
	default: // "en"
		switch code {
		case "missing_key":
			return fmt.Sprintf("missing required key %q", data["key"])
		case "type_mismatch":
			return fmt.Sprintf("key %q: expected %s, got %s", data["key"], data["expected"], data["actual"])
		case "invalid_schema":
			return "schema must be a record"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
