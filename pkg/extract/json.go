package extract

import (
	"fmt"
	"strings"
)

// LocateJSONArray returns the JSON array that starts at the first '[' after
// marker in text, up to and including the bracket that closes it.
//
// Brackets inside string literals are ignored, so a chapter titled
// "[Part 2]" does not end the array early.
func LocateJSONArray(text, marker string) (string, error) {
	at := strings.Index(text, marker)
	if at < 0 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	rest := text[at+len(marker):]
	start := strings.IndexByte(rest, '[')
	if start < 0 {
		return "", fmt.Errorf("%w: no array after %q", ErrUnbalancedBrackets, marker)
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(rest); i++ {
		c := rest[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return rest[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: array after %q never closes", ErrUnbalancedBrackets, marker)
}
