package translate

import "unicode"

// detectConfidence is the reported confidence for script-range
// detection. The heuristic is coarse; the value reflects that.
const detectConfidence = 0.85

// Detect guesses the language of text by script ranges: Han runes mean
// Chinese, kana mean Japanese, Cyrillic means Russian, anything else
// falls back to English. Kana wins over Han so mixed Japanese text
// (kanji plus kana) is not misread as Chinese.
func Detect(text string) (code string, confidence float64) {
	var han, kana, cyrillic bool
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			kana = true
		case unicode.Is(unicode.Han, r):
			han = true
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic = true
		}
	}

	switch {
	case kana:
		return "ja", detectConfidence
	case han:
		return "zh", detectConfidence
	case cyrillic:
		return "ru", detectConfidence
	default:
		return "en", detectConfidence
	}
}
