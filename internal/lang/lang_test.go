package lang

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"two letter", "en", "en"},
		{"two letter upper", "EN", "en"},
		{"three letter", "eng", "en"},
		{"three letter alias", "fre", "fr"},
		{"ietf region", "en-US", "en"},
		{"ietf script on three letter", "eng-Latn", "en"},
		{"unknown three letter", "xxx", ""},
		{"empty", "", ""},
		{"whitespace", "  ", ""},
		{"too long", "english", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.code); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	sample := "The quick brown fox jumps over the lazy dog. " +
		"This is a longer passage of English dialogue so detection has enough signal to work with."

	code, _ := Detect(sample)
	if code != "en" {
		t.Errorf("Detect() = %q, want en", code)
	}
}

func TestDetectEmpty(t *testing.T) {
	if code, ok := Detect("   "); code != "" || ok {
		t.Errorf("Detect(blank) = (%q, %v), want (\"\", false)", code, ok)
	}
}
