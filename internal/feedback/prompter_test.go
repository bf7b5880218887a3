package feedback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptRating(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "valid first try", input: "4\n", want: 4},
		{name: "non-integer then valid", input: "abc\n3\n", want: 3},
		{name: "out of range then valid", input: "0\n6\n5\n", want: 5},
		{name: "whitespace tolerated", input: "  2  \n", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)
			got, err := p.PromptRating()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter rating (1-5):")
		})
	}
}

func TestPromptRatingReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("nope\n9\n1\n"), &out)
	got, err := p.PromptRating()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Contains(t, out.String(), "Not a number")
	assert.Contains(t, out.String(), "between 1 and 5")
	assert.Equal(t, 3, strings.Count(out.String(), "Enter rating"))
}

func TestPromptRatingExhaustedInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("bad\n"), &bytes.Buffer{})
	_, err := p.PromptRating()
	assert.Error(t, err, "input ends before a valid rating arrives")
}

func TestPromptComment(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("lovely evening\n"), &out)
	got, err := p.PromptComment()
	require.NoError(t, err)
	assert.Equal(t, "lovely evening", got)
}

func TestPromptCommentEmpty(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := p.PromptComment()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestPromptCommentNoInput(t *testing.T) {
	// EOF on the comment prompt means "no comment", not an error.
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	got, err := p.PromptComment()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
