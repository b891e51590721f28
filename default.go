package cliopt

import (
	"github.com/cardinalby/go-cli-opts/flatten"
	"github.com/cardinalby/go-cli-opts/opt"
)

// DefaultParser backs the package-level Parse functions. It speaks the
// long-option dialect; construct a Parser explicitly for another one.
var DefaultParser = NewParser(flatten.DialectLong)

// Parse parses args against the catalogue using the DefaultParser.
func Parse(options *opt.Options, args []string) (*Result, error) {
	return DefaultParser.Parse(options, args)
}

// ParseWith parses args with fallback properties and stopAtNonOption using
// the DefaultParser. See Parser.ParseWith.
func ParseWith(options *opt.Options, args []string, properties *Properties, stopAtNonOption bool) (*Result, error) {
	return DefaultParser.ParseWith(options, args, properties, stopAtNonOption)
}

// ParseLine splits and parses a single command string using the
// DefaultParser. See Parser.ParseLine.
func ParseLine(options *opt.Options, line string) (*Result, error) {
	return DefaultParser.ParseLine(options, line)
}
