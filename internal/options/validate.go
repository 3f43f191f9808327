// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/keycase/keyerrors"
)

// RequireOne ensures exactly one input source of option is set.
// names labels each source in the error message and must line up with sources.
func RequireOne(option string, names []string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	if count == 1 {
		return nil
	}

	msg := fmt.Sprintf("exactly one of %s must be provided", joinOr(names))
	if count > 1 {
		msg += fmt.Sprintf(" (got %d)", count)
	}
	return &keyerrors.ConfigError{Option: option, Message: msg}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "the sources"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
