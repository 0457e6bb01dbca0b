// Package attrlex splits a tag body into an attribute-list mapping,
// respecting quoted strings that may contain commas and equals signs.
package attrlex

// Lex decodes a tag body. If the body has no unquoted '=' before its
// first unquoted comma (or before its end), it is a bare value and Lex
// returns isBare == true with a nil map — the caller should use the raw
// body text as-is. Otherwise Lex returns the decoded key/value mapping.
func Lex(body string) (attrs map[string]string, isBare bool) {
	if !looksLikeAttributeList(body) {
		return nil, true
	}
	return parseAttributes(body), false
}

// looksLikeAttributeList reports whether an unquoted '=' appears before
// the first unquoted ',' (or before the end of the string).
func looksLikeAttributeList(v string) bool {
	quoted := false
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				return false
			}
		case '=':
			if !quoted {
				return true
			}
		}
	}
	return false
}

// parseAttributes walks v maintaining a quoted sub-state and two buffers,
// committing a (key, value) pair on every unquoted comma or at the end.
func parseAttributes(v string) map[string]string {
	ret := make(map[string]string)

	inValue := false
	quoted := false
	var key, val []byte

	commit := func() {
		if len(key) == 0 {
			return
		}
		ret[string(key)] = unquote(string(val))
		key = key[:0]
		val = val[:0]
		inValue = false
	}

	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '"':
			quoted = !quoted
			if inValue {
				val = append(val, c)
			} else {
				key = append(key, c)
			}
		case c == '=' && !quoted && !inValue:
			inValue = true
		case c == ',' && !quoted:
			commit()
		default:
			if inValue {
				val = append(val, c)
			} else {
				key = append(key, c)
			}
		}
	}
	commit()

	return ret
}

// unquote strips a single surrounding pair of double quotes, if present.
func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
