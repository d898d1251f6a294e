package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "Hello World", "Hello World"},
		{"control chars removed", "a\x00b\x1bc", "abc"},
		{"newline removed", "line1\nline2", "line1line2"},
		{"invalid utf8 dropped", "ok\xffend", "okend"},
		{"nbsp becomes space", "a b", "a b"},
		{"cjk preserved", "アルバム", "アルバム"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"truncated", "a very long title", 8, "a very …"},
		{"wide chars", "アルバムアート", 6, "アル…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("Row width = %d, want 20", len(got))
	}
	if got[:4] != "left" || got[len(got)-5:] != "right" {
		t.Errorf("Row = %q", got)
	}
}

func TestRow_TooNarrowKeepsGap(t *testing.T) {
	got := Row("left", "right", 5)
	if got != "left right" {
		t.Errorf("Row = %q, want single space gap", got)
	}
}
