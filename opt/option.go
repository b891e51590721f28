package opt

import "strings"

// UnlimitedArgs as NumArgs marks an option that consumes every value token
// following it.
const UnlimitedArgs = -1

// Option is a single recognized flag: its names, value arity and the values
// bound to it during one parse.
//
// An Option is identified by its short or long name; both resolve to the same
// instance once registered in Options. At least one of the names must be
// non-empty, and names cannot contain whitespace or '='.
type Option struct {
	shortName   string
	longName    string
	description string
	required    bool
	numArgs     int
	optionalArg bool
	valueSep    rune
	argType     string
	values      []string
}

// New creates a flag option (takes no value) known under `short` and/or
// `long`. Either name may be empty but not both. Name validation happens
// when the option is registered in Options.
func New(short, long, description string) *Option {
	return &Option{
		shortName:   short,
		longName:    long,
		description: description,
	}
}

// WithArgs sets the number of values the option consumes per match:
// 0 for none, N > 0 for a fixed count, UnlimitedArgs for any number.
func (o *Option) WithArgs(numArgs int) *Option {
	o.numArgs = numArgs
	return o
}

// WithRequired marks the option as mandatory for every parse.
func (o *Option) WithRequired(required bool) *Option {
	o.required = required
	return o
}

// WithOptionalValue allows the value to be omitted even though NumArgs > 0.
func (o *Option) WithOptionalValue() *Option {
	o.optionalArg = true
	return o
}

// WithValueSeparator sets the character joining the option name and its value
// inside a single token (e.g. '=' for "--opt=value"). Zero means the value
// arrives as a separate token or, for short options, attached directly after
// the name ("-ovalue").
func (o *Option) WithValueSeparator(sep rune) *Option {
	o.valueSep = sep
	return o
}

// WithType sets the opaque value type tag. The engine never interprets it.
func (o *Option) WithType(argType string) *Option {
	o.argType = argType
	return o
}

func (o *Option) Short() string { return o.shortName }

func (o *Option) Long() string { return o.longName }

func (o *Option) Description() string { return o.description }

func (o *Option) IsRequired() bool { return o.required }

func (o *Option) NumArgs() int { return o.numArgs }

// HasArg reports whether the option consumes at least one value.
func (o *Option) HasArg() bool { return o.numArgs != 0 }

func (o *Option) IsValueOptional() bool { return o.optionalArg }

func (o *Option) ValueSeparator() rune { return o.valueSep }

func (o *Option) Type() string { return o.argType }

// Key is the canonical identifier used for required-option bookkeeping:
// the short name if present, the long name otherwise.
func (o *Option) Key() string {
	if o.shortName != "" {
		return o.shortName
	}
	return o.longName
}

// HasName reports whether name equals the option's short or long name.
// Leading dashes in name are ignored.
func (o *Option) HasName(name string) bool {
	name = StripDashes(name)
	return name != "" && (name == o.shortName || name == o.longName)
}

// Values returns the values bound during the current parse, in binding order.
func (o *Option) Values() []string { return o.values }

// Value returns the first bound value, or "" if none.
func (o *Option) Value() string {
	if len(o.values) == 0 {
		return ""
	}
	return o.values[0]
}

func (o *Option) HasValue() bool { return len(o.values) > 0 }

// AddValue binds one value to the option. It fails if the option takes no
// values or its fixed arity is already exhausted.
func (o *Option) AddValue(value string) error {
	if o.numArgs == 0 {
		return &ValueBindError{Option: o, Value: value, Reason: "option takes no value"}
	}
	if o.numArgs > 0 && len(o.values) >= o.numArgs {
		return &ValueBindError{Option: o, Value: value, Reason: "all values are already bound"}
	}
	o.values = append(o.values, value)
	return nil
}

// Clone returns an independent copy with an empty value bag. The parse engine
// clones the catalogued option on every match so that bound values never leak
// into the caller-owned catalogue or across parse sessions.
func (o *Option) Clone() *Option {
	clone := *o
	clone.values = nil
	return &clone
}

func (o *Option) clearValues() { o.values = nil }

// String renders the option's names in display form, e.g. "-o/--output".
func (o *Option) String() string {
	switch {
	case o.shortName != "" && o.longName != "":
		return "-" + o.shortName + "/--" + o.longName
	case o.shortName != "":
		return "-" + o.shortName
	default:
		return "--" + o.longName
	}
}

// StripDashes removes up to two leading dashes from a token, turning an
// option token into a bare name.
func StripDashes(token string) string {
	if strings.HasPrefix(token, "--") {
		return token[2:]
	}
	if strings.HasPrefix(token, "-") {
		return token[1:]
	}
	return token
}
