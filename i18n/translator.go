package i18n

// Translator retrieves localized messages for failure codes.
// data provides optional metadata to embed in the message (for example,
// "target" for a conversion width).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "expected_string":
			return "文字列が必要です"
		case "expected_boolean":
			return "真偽値が必要です"
		case "expected_number":
			return "数値が必要です"
		case "expected_integral_number":
			return "小数部のない数値が必要です"
		case "number_not_convertible":
			return target(data) + "に変換できる数値が必要です"
		case "expected_null":
			return "nullが必要です"
		case "expected_array":
			return "配列が必要です"
		case "expected_object":
			return "オブジェクトが必要です"
		case "missing_field":
			return "フィールドに値がありません"
		case "index_out_of_bounds":
			return "配列の範囲内のインデックスが必要です"
		}
	default: // "en"
		switch code {
		case "expected_string":
			return "expected a string"
		case "expected_boolean":
			return "expected a boolean"
		case "expected_number":
			return "expected a number"
		case "expected_integral_number":
			return "expected a number with no decimal part"
		case "number_not_convertible":
			return "expected a number which could be converted to an " + target(data)
		case "expected_null":
			return "expected null"
		case "expected_array":
			return "expected an array"
		case "expected_object":
			return "expected an object"
		case "missing_field":
			return "no value for field"
		case "index_out_of_bounds":
			return "expected array index to be in bounds"
		}
	}
	return code
}

func target(data map[string]string) string {
	if t, ok := data["target"]; ok && t != "" {
		return t
	}
	return "integer"
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
