package cliopt

import (
	"fmt"
	"strings"

	"github.com/cardinalby/go-cli-opts/opt"
)

// UnrecognizedOptionError reports a dash-prefixed token that matches no
// catalogue entry while stopAtNonOption is disabled.
type UnrecognizedOptionError struct {
	Token string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Token)
}

// MissingArgumentError reports an option that requires a value but
// received none.
type MissingArgumentError struct {
	Option *opt.Option
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Option)
}

// MissingRequiredOptionsError aggregates every required option key and
// required group left unsatisfied after scanning and defaulting, so the
// caller sees the complete deficiency in one report.
type MissingRequiredOptionsError struct {
	Keys []string
}

func (e *MissingRequiredOptionsError) Error() string {
	return fmt.Sprintf("missing required options: %s", strings.Join(e.Keys, ", "))
}

// UnknownPropertyError reports a default-map key that names no catalogued
// option.
type UnknownPropertyError struct {
	Key string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("property %q does not match any catalogued option", e.Key)
}
