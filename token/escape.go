package token

import "strings"

// EscapeText escapes text node content: &, <, >. When noDoubleEncoding
// is set, an ampersand that already starts a well-formed character
// reference is left as is.
func EscapeText(v string, noDoubleEncoding bool) string {
	return escape(v, false, noDoubleEncoding)
}

// EscapeAttr escapes attribute values: &, <, >, ".
func EscapeAttr(v string, noDoubleEncoding bool) string {
	return escape(v, true, noDoubleEncoding)
}

func escape(v string, attr, noDoubleEncoding bool) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '&':
			if noDoubleEncoding && startsCharRef(v[i:]) {
				b.WriteByte(c)
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if attr {
				b.WriteString("&quot;")
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// startsCharRef reports whether v begins with a complete entity or
// numeric character reference. Go regexps have no lookahead, so this
// is a hand scan.
func startsCharRef(v string) bool {
	for _, ent := range [...]string{"&amp;", "&lt;", "&gt;", "&quot;", "&apos;"} {
		if strings.HasPrefix(v, ent) {
			return true
		}
	}
	if !strings.HasPrefix(v, "&#") {
		return false
	}
	i := 2
	hex := false
	if i < len(v) && (v[i] == 'x' || v[i] == 'X') {
		hex = true
		i++
	}
	start := i
	for i < len(v) && isRefDigit(v[i], hex) {
		i++
	}
	return i > start && i < len(v) && v[i] == ';'
}

func isRefDigit(c byte, hex bool) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if !hex {
		return false
	}
	return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
