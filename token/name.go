package token

// Char classes from the XML 1.0 (5th ed) Name productions and the
// Namespaces in XML 1.0 NCName/QName productions.

func isNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0xC0 && r <= 0xD6,
		r >= 0xD8 && r <= 0xF6,
		r >= 0xF8 && r <= 0x2FF,
		r >= 0x370 && r <= 0x37D,
		r >= 0x37F && r <= 0x1FFF,
		r >= 0x200C && r <= 0x200D,
		r >= 0x2070 && r <= 0x218F,
		r >= 0x2C00 && r <= 0x2FEF,
		r >= 0x3001 && r <= 0xD7FF,
		r >= 0xF900 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

func isNameChar(r rune) bool {
	if isNameStartChar(r) {
		return true
	}
	switch {
	case r == '-' || r == '.',
		r >= '0' && r <= '9',
		r == 0xB7,
		r >= 0x300 && r <= 0x36F,
		r >= 0x203F && r <= 0x2040:
		return true
	}
	return false
}

// IsName reports whether v matches the XML Name production.
func IsName(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// IsNCName reports whether v matches the NCName production: a Name
// with no colon.
func IsNCName(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if r == ':' {
			return false
		}
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// IsQName reports whether v matches the QName production: an NCName,
// or two NCNames joined by exactly one colon.
func IsQName(v string) bool {
	for i, r := range v {
		if r != ':' {
			continue
		}
		return IsNCName(v[:i]) && IsNCName(v[i+1:])
	}
	return IsNCName(v)
}
