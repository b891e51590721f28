package opt

import (
	"fmt"
	"unicode"
)

// Options is the catalogue of recognized options: every registered short and
// long name maps to its Option, insertion order is preserved for display.
//
// A catalogue may be reused across sequential parses (the engine clears all
// per-option state at parse start) but is not safe for concurrent parses;
// callers needing parallelism must build a catalogue per parse.
type Options struct {
	byName  map[string]*Option
	list    []*Option
	groups  []*Group
	groupOf map[string]*Group
}

func NewOptions() *Options {
	return &Options{
		byName:  make(map[string]*Option),
		groupOf: make(map[string]*Group),
	}
}

// Add registers the option under its short and long names. It fails with
// *DuplicateNameError if either name is already taken, and with a plain error
// if the names are invalid.
func (o *Options) Add(option *Option) error {
	if option.Short() == "" && option.Long() == "" {
		return fmt.Errorf("option must have a short or a long name")
	}
	for _, name := range []string{option.Short(), option.Long()} {
		if name == "" {
			continue
		}
		if err := validateName(name); err != nil {
			return err
		}
		if _, taken := o.byName[name]; taken {
			return &DuplicateNameError{Name: name}
		}
	}
	for _, name := range []string{option.Short(), option.Long()} {
		if name != "" {
			o.byName[name] = option
		}
	}
	o.list = append(o.list, option)
	return nil
}

// AddGroup registers every member of the group and records their membership.
// An option can belong to at most one group; membership in a second group is
// rejected before anything is registered.
func (o *Options) AddGroup(group *Group) error {
	for _, member := range group.Options() {
		if g := o.groupOf[member.Key()]; g != nil {
			return fmt.Errorf("option %s already belongs to the group %s", member, g)
		}
	}
	for _, member := range group.Options() {
		if err := o.Add(member); err != nil {
			return err
		}
		o.groupOf[member.Key()] = group
	}
	o.groups = append(o.groups, group)
	return nil
}

// Lookup resolves a token or bare name to its option. Leading dashes are
// stripped; matching is exact, no prefix or abbreviation matching.
func (o *Options) Lookup(token string) *Option {
	return o.byName[StripDashes(token)]
}

func (o *Options) Has(token string) bool {
	return o.Lookup(token) != nil
}

// GroupOf returns the mutually exclusive group the option belongs to, if any.
func (o *Options) GroupOf(option *Option) *Group {
	return o.groupOf[option.Key()]
}

// All returns the registered options in insertion order.
func (o *Options) All() []*Option { return o.list }

// Groups returns the registered groups in insertion order.
func (o *Options) Groups() []*Group { return o.groups }

// RequiredKeys derives the keys of all individually required options, in
// insertion order. Required groups are tracked separately via Groups.
func (o *Options) RequiredKeys() []string {
	var keys []string
	for _, option := range o.list {
		if option.IsRequired() {
			keys = append(keys, option.Key())
		}
	}
	return keys
}

// Reset clears every option's value bag and every group's selection, making
// the catalogue safe to reuse for a new parse session.
func (o *Options) Reset() {
	for _, option := range o.list {
		option.clearValues()
	}
	for _, group := range o.groups {
		group.reset()
	}
}

func validateName(name string) error {
	for _, r := range name {
		if unicode.IsSpace(r) || r == '=' {
			return fmt.Errorf("invalid character %q in option name %q", r, name)
		}
	}
	return nil
}
