package cliopt

import (
	"github.com/cardinalby/go-cli-opts/opt"
)

// Result is the outcome of one parse: the matched options with their bound
// values, in match order, and the remaining positional arguments. The caller
// owns it exclusively; the engine holds no reference after returning.
type Result struct {
	matched []*opt.Option
	args    []string
}

// Has reports whether the named option was supplied (or defaulted).
// The name may be a short name, a long name, or a dash-prefixed token.
func (r *Result) Has(name string) bool {
	return r.lookup(name) != nil
}

// Value returns the first value bound to the named option, or "" if the
// option is absent or carries no value.
func (r *Result) Value(name string) string {
	if o := r.lookup(name); o != nil {
		return o.Value()
	}
	return ""
}

// ValueOr returns the first bound value of the named option, or fallback if
// the option is absent or has no value.
func (r *Result) ValueOr(name, fallback string) string {
	if o := r.lookup(name); o != nil && o.HasValue() {
		return o.Value()
	}
	return fallback
}

// Values returns all values bound to the named option in binding order,
// or nil.
func (r *Result) Values(name string) []string {
	if o := r.lookup(name); o != nil {
		return o.Values()
	}
	return nil
}

// Option returns the matched option for the name, or nil. The returned
// option is the session-local copy, independent of the catalogue.
func (r *Result) Option(name string) *opt.Option {
	return r.lookup(name)
}

// Options returns all matched options in match order.
func (r *Result) Options() []*opt.Option { return r.matched }

// Args returns the positional arguments in their original order.
func (r *Result) Args() []string { return r.args }

func (r *Result) lookup(name string) *opt.Option {
	for _, o := range r.matched {
		if o.HasName(name) {
			return o
		}
	}
	return nil
}

// record stores a matched option. A repeated match replaces the previous
// record (last match wins), except for unlimited-arity options which
// accumulate values across matches.
func (r *Result) record(o *opt.Option) {
	for i, existing := range r.matched {
		if existing.Key() != o.Key() {
			continue
		}
		if existing.NumArgs() == opt.UnlimitedArgs {
			for _, v := range o.Values() {
				_ = existing.AddValue(v)
			}
		} else {
			r.matched[i] = o
		}
		return
	}
	r.matched = append(r.matched, o)
}
