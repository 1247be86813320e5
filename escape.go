package csv2latex

// EscapeTable maps a TeX control byte to the sequence written in its place.
type EscapeTable map[byte]string

// texControl lists the bytes escaped by default.
const texControl = `\_#$%^&{}~`

// DefaultEscapes returns a fresh table for the TeX control characters.
// Backslash becomes \textbackslash{}; every other byte is prefixed with a
// backslash.
func DefaultEscapes() EscapeTable {
	return ParseEscapes(texControl)
}

// Add registers c with its default escape sequence.
func (t EscapeTable) Add(c byte) {
	if c == '\\' {
		t[c] = `\textbackslash{}`
		return
	}
	t[c] = `\` + string(c)
}

// Lookup returns the escape sequence for c, if any.
func (t EscapeTable) Lookup(c byte) (string, bool) {
	s, ok := t[c]
	return s, ok
}

// Chars returns the escaped bytes as a string in ascending byte order.
func (t EscapeTable) Chars() string {
	out := make([]byte, 0, len(t))
	for c := 0; c < 256; c++ {
		if _, ok := t[byte(c)]; ok {
			out = append(out, byte(c))
		}
	}
	return string(out)
}

// ParseEscapes builds a table escaping exactly the bytes of chars.
func ParseEscapes(chars string) EscapeTable {
	t := make(EscapeTable, len(chars))
	for i := 0; i < len(chars); i++ {
		t.Add(chars[i])
	}
	return t
}
