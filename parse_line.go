package cliopt

import (
	"fmt"

	"github.com/google/shlex"

	"github.com/cardinalby/go-cli-opts/opt"
)

// ParseLine splits a single command string into argv tokens using shell-like
// quoting rules and parses them. The split is the only concession to shell
// syntax: the resulting tokens go through the usual flattening and scan.
func (p *Parser) ParseLine(options *opt.Options, line string) (*Result, error) {
	return p.ParseLineWith(options, line, nil, false)
}

// ParseLineWith is ParseLine with fallback properties and stopAtNonOption,
// see Parser.ParseWith.
func (p *Parser) ParseLineWith(
	options *opt.Options,
	line string,
	properties *Properties,
	stopAtNonOption bool,
) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("splitting command line: %w", err)
	}
	return p.ParseWith(options, args, properties, stopAtNonOption)
}
