package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chaptersMarker = "window.chapters = "

func TestLocateJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "nested arrays",
			text: "window.chapters = [1,[2,3],4]; done",
			want: "[1,[2,3],4]",
		},
		{
			name: "objects inside",
			text: `var a = 1; window.chapters = [{"id":1,"tags":[]},{"id":2}]; window.other = [9];`,
			want: `[{"id":1,"tags":[]},{"id":2}]`,
		},
		{
			name: "empty array",
			text: "window.chapters = [];",
			want: "[]",
		},
		{
			name: "whitespace before bracket",
			text: "window.chapters = \n  [1]",
			want: "[1]",
		},
		{
			name: "brackets inside strings",
			text: `window.chapters = [{"title":"Part ] one [","url":"/a"}];`,
			want: `[{"title":"Part ] one [","url":"/a"}]`,
		},
		{
			name: "escaped quote inside string",
			text: `window.chapters = [{"title":"say \"]\" now"}] trailing]`,
			want: `[{"title":"say \"]\" now"}]`,
		},
		{
			name: "first marker wins",
			text: "window.chapters = [1] window.chapters = [2]",
			want: "[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocateJSONArray(tt.text, chaptersMarker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assertBalanced(t, got)
		})
	}
}

func TestLocateJSONArrayErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"missing marker", "window.fiction = [1]", ErrMarkerNotFound},
		{"empty input", "", ErrMarkerNotFound},
		{"never closes", "window.chapters = [1,[2,3]", ErrUnbalancedBrackets},
		{"no array", "window.chapters = null;", ErrUnbalancedBrackets},
		{"closing bracket only in string", `window.chapters = ["]"`, ErrUnbalancedBrackets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocateJSONArray(tt.text, chaptersMarker)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

// assertBalanced checks that depth never goes negative outside strings and
// ends at zero.
func assertBalanced(t *testing.T, s string) {
	t.Helper()

	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
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
		}
		if depth < 0 {
			t.Fatalf("depth went negative at %d in %q", i, s)
		}
	}
	assert.Zero(t, depth, "unbalanced result %q", s)
}
