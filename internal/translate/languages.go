// Package translate provides the translation providers, language
// detection, and the supported language registry.
package translate

// Supported maps language codes to display names.
var Supported = map[string]string{
	"en": "English",
	"zh": "中文",
	"ja": "日本語",
	"fr": "Français",
	"de": "Deutsch",
	"es": "Español",
	"ru": "Русский",
}

// Codes lists the supported language codes in stable display order.
var Codes = []string{"en", "zh", "ja", "fr", "de", "es", "ru"}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	_, ok := Supported[code]
	return ok
}

// Name returns the display name for code, or "unknown" when the code is
// not supported.
func Name(code string) string {
	if name, ok := Supported[code]; ok {
		return name
	}
	return "unknown"
}
