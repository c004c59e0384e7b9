package svg

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a<b", "a&lt;b"},
		{"a&b", "a&amp;b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's>ok", "it&apos;s&gt;ok"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{20, "20"},
		{-10, "-10"},
		{0.5, "0.5"},
		{120.5, "120.5"},
		{3.25, "3.25"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
