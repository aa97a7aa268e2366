package commands

import (
	"errors"
	"strings"
)

// ErrUsage is returned when the document argument is missing
var ErrUsage = errors.New("missing document path")

// ParseFileArg returns the document path from command arguments
func ParseFileArg(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", ErrUsage
	}
	return args[0], nil
}
