// Package flatten normalizes raw process arguments into atomic tokens: one
// option indicator, value or positional string per token, with no embedded
// separator-joined pairs left. The parse engine consumes the flattened
// sequence uniformly regardless of the dialect that produced it.
package flatten

import (
	"strings"
	"unicode/utf8"

	"github.com/cardinalby/go-cli-opts/opt"
)

// Dialect selects the flattening strategy for raw arguments.
type Dialect int

const (
	// DialectBasic passes raw tokens through without any normalization.
	DialectBasic Dialect = iota

	// DialectBundling is the classic POSIX style: single-dash tokens like
	// "-abc" burst into "-a -b -c" when every character is a registered
	// flag, and flattening stops at the first non-option token when
	// stopAtNonOption is set.
	DialectBundling

	// DialectLong is the GNU style: "--long=value" and attached short
	// values are split, no bundling, and flattening never stops early.
	DialectLong
)

// Flatten converts raw tokens into an atomic token sequence. Relative order
// is preserved, a literal "--" or "-" is never split or reclassified, and
// the first "--" passes through exactly once. Flattening never fails:
// unrecognizable tokens pass through unmodified for the scan loop to
// classify.
func Flatten(dialect Dialect, options *opt.Options, args []string, stopAtNonOption bool) []string {
	switch dialect {
	case DialectBundling:
		return flattenBundling(options, args, stopAtNonOption)
	case DialectLong:
		return flattenLong(options, args)
	default:
		return append([]string(nil), args...)
	}
}

func flattenLong(options *opt.Options, args []string) []string {
	tokens := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			// everything after the terminator is positional, copy verbatim
			return append(append(tokens, arg), args[i+1:]...)
		}

		if isOptionLike(arg) {
			tokens = append(tokens, splitOptionToken(options, arg)...)
		} else {
			tokens = append(tokens, arg)
		}
	}
	return tokens
}

func flattenBundling(options *opt.Options, args []string, stopAtNonOption bool) []string {
	tokens := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			// everything after the terminator is positional, copy verbatim
			return append(append(tokens, arg), args[i+1:]...)
		}

		if isOptionLike(arg) {
			switch {
			case options.Has(arg):
				tokens = append(tokens, arg)
			default:
				if parts, ok := splitAtSeparator(options, arg); ok {
					tokens = append(tokens, parts...)
					break
				}
				if !strings.HasPrefix(arg, "--") {
					if burst, ok := burstToken(options, arg); ok {
						tokens = append(tokens, burst...)
						break
					}
				}
				// a dash-prefixed token the catalogue does not know is a
				// non-option too: it stops flattening like any other
				tokens = append(tokens, arg)
				if stopAtNonOption {
					return append(tokens, args[i+1:]...)
				}
			}
			continue
		}

		tokens = append(tokens, arg)
		if stopAtNonOption {
			// classic POSIX behavior: stop flattening at the first
			// non-option token, the remainder passes through verbatim
			return append(tokens, args[i+1:]...)
		}
	}
	return tokens
}

// isOptionLike reports whether the token is a candidate for splitting:
// dash-prefixed and not a bare "-" or "--".
func isOptionLike(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg != "--"
}

// splitOptionToken normalizes one dash-prefixed token into its atomic parts:
// the whole token if it names a registered option, the name and value halves
// if a separator split applies, the name and attached value for short options
// without a separator, or the token unmodified.
func splitOptionToken(options *opt.Options, arg string) []string {
	if options.Has(arg) {
		return []string{arg}
	}
	if parts, ok := splitAtSeparator(options, arg); ok {
		return parts
	}
	if parts, ok := splitAttached(options, arg); ok {
		return parts
	}
	return []string{arg}
}

// splitAtSeparator splits "--name=value" (or "-n=value") at the option's
// configured value separator. Long options default to '='; short options
// split only when a separator is configured.
func splitAtSeparator(options *opt.Options, arg string) ([]string, bool) {
	name := opt.StripDashes(arg)
	isLong := strings.HasPrefix(arg, "--")
	prefixLen := len(arg) - len(name)

	for i, r := range name {
		if i == 0 {
			continue
		}
		option := options.Lookup(name[:i])
		if option == nil {
			continue
		}
		sep := option.ValueSeparator()
		if sep == 0 && isLong {
			sep = '='
		}
		if sep != 0 && r == sep {
			return []string{arg[:prefixLen+i], name[i+utf8.RuneLen(r):]}, true
		}
	}
	return nil, false
}

// splitAttached splits "-ovalue" into "-o" and "value" when a registered
// prefix of the token takes a value and has no configured separator. Longer
// names win over shorter ones.
func splitAttached(options *opt.Options, arg string) ([]string, bool) {
	if strings.HasPrefix(arg, "--") || len(arg) < 3 {
		return nil, false
	}
	name := arg[1:]
	for i := len(name) - 1; i >= 1; i-- {
		option := options.Lookup(name[:i])
		if option != nil && option.HasArg() && option.ValueSeparator() == 0 {
			return []string{arg[:1+i], name[i:]}, true
		}
	}
	return nil, false
}

// burstToken expands a bundled short-flag token like "-abc" into "-a -b -c".
// Every character must be a registered flag taking no value, except possibly
// a final value-taking option that claims the remainder of the token as its
// attached value. If any character is unrecognized the burst is rejected and
// the token passes through unmodified.
func burstToken(options *opt.Options, arg string) ([]string, bool) {
	name := arg[1:]
	var burst []string
	for i, r := range name {
		option := options.Lookup(string(r))
		if option == nil {
			return nil, false
		}
		burst = append(burst, "-"+string(r))
		if option.HasArg() {
			if rest := name[i+utf8.RuneLen(r):]; rest != "" {
				burst = append(burst, rest)
			}
			return burst, true
		}
	}
	return burst, true
}
