package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	var gotLabel string
	var p Prompter = Func(func(label string) (string, error) {
		gotLabel = label
		return "acme/blog", nil
	})

	answer, err := p.Prompt("repo? ")

	assert.NoError(t, err)
	assert.Equal(t, "acme/blog", answer)
	assert.Equal(t, "repo? ", gotLabel)
}

func TestFuncError(t *testing.T) {
	p := Func(func(string) (string, error) {
		return "", errors.New("no terminal")
	})

	_, err := p.Prompt("repo? ")

	assert.EqualError(t, err, "no terminal")
}
