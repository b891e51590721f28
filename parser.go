// Package cliopt parses command-line arguments against a declarative
// catalogue of options, enforcing arity, required-option and
// mutual-exclusion constraints. Raw arguments are first normalized into
// atomic tokens by a dialect flattener, then classified by a single
// left-to-right scan that greedily binds values to matched options.
//
// The engine performs no I/O: it receives an already-materialized argument
// slice (and optionally a Properties map of fallback values) and returns a
// Result or a typed error.
package cliopt

import (
	"strings"

	"github.com/cardinalby/go-cli-opts/flatten"
	"github.com/cardinalby/go-cli-opts/opt"
)

// Parser runs the scan over flattened tokens. It is stateless between calls:
// all per-parse state lives in the session, and the catalogue is reset at
// parse start, so one Parser may serve many sequential parses.
type Parser struct {
	dialect flatten.Dialect
}

func NewParser(dialect flatten.Dialect) *Parser {
	return &Parser{dialect: dialect}
}

// Parse matches args against the catalogue with no fallback values and
// strict handling of unrecognized options.
func (p *Parser) Parse(options *opt.Options, args []string) (*Result, error) {
	return p.ParseWith(options, args, nil, false)
}

// ParseWith matches args against the catalogue. properties supplies
// per-option fallback values applied after the scan (nil for none). When
// stopAtNonOption is set, the first token that is not a recognized option
// turns every remaining token into a positional argument instead of failing
// on unrecognized options.
func (p *Parser) ParseWith(
	options *opt.Options,
	args []string,
	properties *Properties,
	stopAtNonOption bool,
) (*Result, error) {
	options.Reset()

	s := newSession(options)
	cur := &cursor{tokens: flatten.Flatten(p.dialect, options, args, stopAtNonOption)}

	for {
		tok, ok := cur.next()
		if !ok {
			break
		}

		switch {
		case s.eatTheRest:
			// a stray terminator is dropped, everything else is positional
			if tok != "--" {
				s.result.args = append(s.result.args, tok)
			}

		case tok == "--":
			s.eatTheRest = true

		case tok == "-":
			if stopAtNonOption {
				s.eatTheRest = true
			} else {
				s.result.args = append(s.result.args, tok)
			}

		case strings.HasPrefix(tok, "-"):
			matched := options.Lookup(tok)
			if matched == nil {
				if !stopAtNonOption {
					return nil, &UnrecognizedOptionError{Token: tok}
				}
				s.result.args = append(s.result.args, tok)
				s.eatTheRest = true
				break
			}
			if err := s.match(matched, cur); err != nil {
				return nil, err
			}

		default:
			s.result.args = append(s.result.args, tok)
			if stopAtNonOption {
				s.eatTheRest = true
			}
		}
	}

	if err := s.applyProperties(properties); err != nil {
		return nil, err
	}
	if err := s.checkRequired(); err != nil {
		return nil, err
	}
	return s.result, nil
}

// session is the transient state of one parse: the unsatisfied required
// keys and groups, the in-progress result and the eat-the-rest flag.
type session struct {
	options       *opt.Options
	result        *Result
	missingKeys   []string
	missingGroups []*opt.Group
	eatTheRest    bool
}

func newSession(options *opt.Options) *session {
	s := &session{
		options:     options,
		result:      &Result{},
		missingKeys: options.RequiredKeys(),
	}
	for _, g := range options.Groups() {
		if g.IsRequired() {
			s.missingGroups = append(s.missingGroups, g)
		}
	}
	return s
}

// match handles one recognized option token: group selection, required
// bookkeeping and greedy value consumption. The catalogued option is cloned
// so bound values never leak into the caller-owned catalogue or across
// repeated matches.
func (s *session) match(catalogued *opt.Option, cur *cursor) error {
	o := catalogued.Clone()

	s.satisfyKey(o.Key())
	if g := s.options.GroupOf(catalogued); g != nil {
		if err := g.Select(catalogued); err != nil {
			return err
		}
		s.satisfyGroup(g)
	}

	if o.HasArg() {
		s.consumeValues(o, cur)
		if !o.HasValue() && !o.IsValueOptional() {
			return &MissingArgumentError{Option: o}
		}
	}

	s.result.record(o)
	return nil
}

// consumeValues binds following tokens to the option until a recognized
// option token appears, the arity is exhausted or the tokens run out. The
// stopping token stays in the cursor for the scan loop to reclassify.
func (s *session) consumeValues(o *opt.Option, cur *cursor) {
	for {
		tok, ok := cur.peek()
		if !ok {
			return
		}
		// the terminator is never a value: it must reach the scan loop so
		// everything after it stays positional
		if tok == "--" {
			return
		}
		if strings.HasPrefix(tok, "-") && s.options.Has(tok) {
			return
		}
		if err := o.AddValue(stripQuotes(tok)); err != nil {
			return
		}
		cur.next()
	}
}

// applyProperties runs the defaulting pass: each key in insertion order, in
// the exact policy described on Properties. Default-value bind failures are
// swallowed per key; an unknown key aborts the parse.
func (s *session) applyProperties(properties *Properties) error {
	var unknown error
	properties.Each(func(key, value string) bool {
		if s.result.Has(key) {
			return true
		}
		catalogued := s.options.Lookup(key)
		if catalogued == nil {
			unknown = &UnknownPropertyError{Key: key}
			return false
		}

		o := catalogued.Clone()
		if o.HasArg() {
			if err := o.AddValue(value); err != nil {
				// best-effort: an unbindable default is skipped
				return true
			}
			s.result.record(o)
			return true
		}

		switch strings.ToLower(value) {
		case "yes", "true", "1":
			s.result.record(o)
			return true
		default:
			// a non-affirmative value for a no-value option stops the
			// whole defaulting pass, including all later keys
			return false
		}
	})
	return unknown
}

// checkRequired produces one aggregate failure listing every required option
// key and required group still unsatisfied.
func (s *session) checkRequired() error {
	if len(s.missingKeys) == 0 && len(s.missingGroups) == 0 {
		return nil
	}
	keys := append([]string(nil), s.missingKeys...)
	for _, g := range s.missingGroups {
		keys = append(keys, g.String())
	}
	return &MissingRequiredOptionsError{Keys: keys}
}

func (s *session) satisfyKey(key string) {
	for i, k := range s.missingKeys {
		if k == key {
			s.missingKeys = append(s.missingKeys[:i], s.missingKeys[i+1:]...)
			return
		}
	}
}

func (s *session) satisfyGroup(group *opt.Group) {
	for i, g := range s.missingGroups {
		if g == group {
			s.missingGroups = append(s.missingGroups[:i], s.missingGroups[i+1:]...)
			return
		}
	}
}

// cursor is a forward reader over the atomic token sequence with one-token
// lookahead, replacing a push-back iterator: consumers peek before deciding
// to consume.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// stripQuotes removes one layer of matching leading and trailing quotes.
// Cosmetic normalization only, not shell-aware quote parsing.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first := s[0]
		if (first == '"' || first == '\'') && s[len(s)-1] == first {
			return s[1 : len(s)-1]
		}
	}
	return s
}
