package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_type_shape":
			return "サポートされていない型の形です"
		case "non_unit_variant":
			return "ユニットでないバリアントは使用できません"
		case "numeric_without_representation":
			return "数値表現のマーカーがありません"
		case "misplaced_description":
			return "説明を付けられない位置です"
		case "unsupported_root_type":
			return "ルートドキュメントにできない型です"
		case "unresolved_reference":
			return "参照先の型が登録されていません"
		case "cyclic_reference":
			return "型参照が循環しています"
		case "empty_enum":
			return "列挙のバリアントが空です"
		case "duplicate_field":
			return "キーが重複しています"
		case "duplicate_type":
			return "型名が重複しています"
		case "registry_frozen":
			return "レジストリは凍結済みです"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "unsupported_type_shape":
			return "unsupported type shape"
		case "non_unit_variant":
			return "enum variants must be unit variants"
		case "numeric_without_representation":
			return "integer discriminants require a fixed-width representation marker"
		case "misplaced_description":
			return "description is not representable here"
		case "unsupported_root_type":
			return "only struct definitions may serve as a root document"
		case "unresolved_reference":
			return "referenced type has no registered producer"
		case "cyclic_reference":
			return "type references form a cycle"
		case "empty_enum":
			return "enum has no variants after skip-filtering"
		case "duplicate_field":
			return "duplicate key"
		case "duplicate_type":
			return "duplicate type name"
		case "registry_frozen":
			return "registry is frozen"
		case "parse_error":
			return "parse error"
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
