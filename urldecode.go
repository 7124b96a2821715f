package main

import "fmt"

// urlDecode decodes percent escapes and turns '+' into a space. The
// result is never longer than the input. A '%' that is not followed by
// two hex digits is an error, including at the very end of the input.
func urlDecode(s string) (string, error) {
	decoded := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			if i+2 >= len(s) {
				return "", fmt.Errorf("truncated escape at offset %d", i)
			}
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				return "", fmt.Errorf("invalid escape %q at offset %d", s[i:i+3], i)
			}
			decoded = append(decoded, hi<<4|lo)
			i += 2
		case '+':
			decoded = append(decoded, ' ')
		default:
			decoded = append(decoded, s[i])
		}
	}
	return string(decoded), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
