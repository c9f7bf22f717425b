package translate

import (
	"context"
	"fmt"
	"strings"
)

// dictionaries holds the built-in phrase tables, keyed by
// "<source>_to_<target>". Lookups are lower-cased.
var dictionaries = map[string]map[string]string{
	"en_to_zh": {
		"hello":        "你好",
		"world":        "世界",
		"thank you":    "谢谢",
		"goodbye":      "再见",
		"good morning": "早上好",
		"good evening": "晚上好",
		"how are you":  "你好吗",
		"i love you":   "我爱你",
		"welcome":      "欢迎",
		"please":       "请",
		"sorry":        "对不起",
		"yes":          "是的",
		"no":           "不",
	},
	"zh_to_en": {
		"你好":  "hello",
		"世界":  "world",
		"谢谢":  "thank you",
		"再见":  "goodbye",
		"早上好": "good morning",
		"晚上好": "good evening",
		"你好吗": "how are you",
		"我爱你": "i love you",
		"欢迎":  "welcome",
		"请":   "please",
		"对不起": "sorry",
		"是的":  "yes",
		"不":   "no",
	},
	"en_to_ja": {
		"hello":        "こんにちは",
		"world":        "世界",
		"thank you":    "ありがとう",
		"goodbye":      "さよなら",
		"good morning": "おはよう",
		"good evening": "こんばんは",
	},
	"ja_to_en": {
		"こんにちは": "hello",
		"世界":    "world",
		"ありがとう": "thank you",
		"さよなら":  "goodbye",
		"おはよう":  "good morning",
		"こんばんは": "good evening",
	},
}

// dictTranslator translates from the built-in phrase tables. It always
// produces a result: unknown phrases come back tagged with the target
// language code.
type dictTranslator struct{}

// NewDict creates the built-in dictionary translator. It needs no
// credentials and never fails, which makes it the fallback for every
// other provider.
func NewDict() Translator {
	return dictTranslator{}
}

func (dictTranslator) Name() string { return ProviderDict }

func (dictTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	table, ok := dictionaries[source+"_to_"+target]
	if !ok {
		return tagged(text, target), nil
	}

	if out, ok := table[lowered]; ok {
		return out, nil
	}

	// Partial match: replace the first known phrase found in the text.
	for phrase, out := range table {
		if strings.Contains(lowered, phrase) {
			return strings.Replace(text, phrase, out, 1), nil
		}
	}

	return tagged(text, target), nil
}

// tagged is the untranslatable fallback: the original text marked with
// the target language.
func tagged(text, target string) string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(target), text)
}
