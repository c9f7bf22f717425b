package translate

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"hello world", "en"},
		{"你好世界", "zh"},
		{"こんにちは", "ja"},
		{"日本語のテキスト", "ja"}, // kanji plus kana is Japanese, not Chinese
		{"Привет мир", "ru"},
		{"", "en"},
		{"12345 !?", "en"},
	}
	for _, c := range cases {
		got, conf := Detect(c.text)
		if got != c.want {
			t.Errorf("Detect(%q) = %q, want %q", c.text, got, c.want)
		}
		if conf <= 0 || conf > 1 {
			t.Errorf("Detect(%q) confidence out of range: %v", c.text, conf)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range Codes {
		if !IsSupported(code) {
			t.Errorf("%q should be supported", code)
		}
	}
	if IsSupported("xx") {
		t.Error("xx should not be supported")
	}
}

func TestName(t *testing.T) {
	if got := Name("zh"); got != "中文" {
		t.Errorf("Name(zh) = %q", got)
	}
	if got := Name("xx"); got != "unknown" {
		t.Errorf("Name(xx) = %q", got)
	}
}
