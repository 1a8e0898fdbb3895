package token

import (
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name             string
		in               string
		noDoubleEncoding bool
		expected         string
	}{
		{"plain", "abc", false, "abc"},
		{"amp", "a&b", false, "a&amp;b"},
		{"lt gt", "a<b>c", false, "a&lt;b&gt;c"},
		{"quote not escaped", `a"b`, false, `a"b`},
		{"existing ref re-escaped", "a&amp;b", false, "a&amp;amp;b"},
		{"existing ref kept", "a&amp;b", true, "a&amp;b"},
		{"bare amp still escaped", "a & &lt;", true, "a &amp; &lt;"},
		{"numeric ref kept", "&#169;", true, "&#169;"},
		{"hex ref kept", "&#xA9;", true, "&#xA9;"},
		{"incomplete numeric ref", "&#x;", true, "&amp;#x;"},
		{"unterminated ref", "&#169", true, "&amp;#169"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.in, tt.noDoubleEncoding); got != tt.expected {
				t.Errorf("EscapeText(%q, %v) = %q, want %q", tt.in, tt.noDoubleEncoding, got, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name             string
		in               string
		noDoubleEncoding bool
		expected         string
	}{
		{"plain", "abc", false, "abc"},
		{"quote", `a"b`, false, "a&quot;b"},
		{"amp and quote", `&"`, false, "&amp;&quot;"},
		{"ref kept", "&quot;", true, "&quot;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeAttr(tt.in, tt.noDoubleEncoding); got != tt.expected {
				t.Errorf("EscapeAttr(%q, %v) = %q, want %q", tt.in, tt.noDoubleEncoding, got, tt.expected)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "abc", `"abc"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"control", "a\x01b", `"a\u0001b"`},
		{"unicode", "héllo", `"héllo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.expected {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.expected)
			}
		})
	}
}
