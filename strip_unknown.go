package cliopt

import (
	"strings"

	"github.com/cardinalby/go-cli-opts/flatten"
	"github.com/cardinalby/go-cli-opts/opt"
)

// StripUnknown partitions raw args into the tokens the catalogue understands
// and the rest, never failing on unrecognized options. A recognized option
// travels together with the value tokens it would consume; everything after
// a "--" terminator is kept. Useful for wrapper CLIs that forward unknown
// options to another program.
func StripUnknown(dialect flatten.Dialect, options *opt.Options, args []string) (kept, stripped []string) {
	tokens := flatten.Flatten(dialect, options, args, false)
	cur := &cursor{tokens: tokens}

	for {
		tok, ok := cur.next()
		if !ok {
			return kept, stripped
		}

		if tok == "--" {
			kept = append(kept, tok)
			kept = append(kept, cur.tokens[cur.pos:]...)
			return kept, stripped
		}

		if len(tok) > 1 && strings.HasPrefix(tok, "-") {
			catalogued := options.Lookup(tok)
			if catalogued == nil {
				stripped = append(stripped, tok)
				continue
			}
			kept = append(kept, tok)
			// drag the option's value tokens along with it
			probe := catalogued.Clone()
			for probe.HasArg() {
				value, ok := cur.peek()
				if !ok || value == "--" || (strings.HasPrefix(value, "-") && options.Has(value)) {
					break
				}
				if err := probe.AddValue(value); err != nil {
					break
				}
				kept = append(kept, value)
				cur.next()
			}
			continue
		}

		kept = append(kept, tok)
	}
}
