package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "slots").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "conflict":
			return "フィールドが競合しています"
		case "requirement_missing":
			return "必要なフィールドが不足しています"
		case "too_many_args":
			return "引数が多すぎます"
		case "piece_slots":
			return "スロット数が一致しません"
		case "tuple_arity":
			return "タプルの要素が多すぎます"
		case "out_of_range":
			return "範囲外です"
		case "invalid_spec":
			return "仕様が不正です"
		case "parse_error":
			return "解析エラー"
		case "backend_failure":
			return "バックエンドの失敗です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "conflict":
			return "conflicting fields both present"
		case "requirement_missing":
			return "required companion field missing"
		case "too_many_args":
			return "too many args"
		case "piece_slots":
			return "piece wrote a different number of slots than declared"
		case "tuple_arity":
			return "tuple piece arity exceeded"
		case "out_of_range":
			return "index out of range"
		case "invalid_spec":
			return "malformed field/event spec"
		case "parse_error":
			return "parse error"
		case "backend_failure":
			return "backend failure"
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
