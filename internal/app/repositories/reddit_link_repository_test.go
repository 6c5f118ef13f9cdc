package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCourseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "CSE320", want: "CSE320"},
		{name: "lowercase with space", input: "cse 320", want: "CSE320"},
		{name: "surrounding whitespace", input: "  AMS 210  ", want: "AMS210"},
		{name: "multiple inner spaces", input: "c s e 114", want: "CSE114"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalizeCourseNumber(tt.input))
		})
	}
}
