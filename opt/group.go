package opt

import "strings"

// Group is a cluster of mutually exclusive options: at most one member may be
// selected during a parse. A required group must have exactly one member
// selected.
type Group struct {
	options  []*Option
	required bool
	selected string
}

func NewGroup(options ...*Option) *Group {
	return &Group{options: options}
}

func (g *Group) Add(option *Option) *Group {
	g.options = append(g.options, option)
	return g
}

func (g *Group) WithRequired(required bool) *Group {
	g.required = required
	return g
}

func (g *Group) Options() []*Option { return g.options }
func (g *Group) IsRequired() bool   { return g.required }

// Selected returns the key of the member selected in the current parse,
// or "" if none.
func (g *Group) Selected() string { return g.selected }

// Select marks the option as the group's choice for the current parse.
// Selecting the same option again is a no-op; selecting a different member
// fails with *AlreadySelectedError.
func (g *Group) Select(option *Option) error {
	key := option.Key()
	if g.selected == "" {
		g.selected = key
		return nil
	}
	if g.selected == key {
		return nil
	}
	return &AlreadySelectedError{Group: g, Selected: g.selected, Attempted: key}
}

func (g *Group) reset() { g.selected = "" }

// String renders the group's members in display form, e.g. "[-a | -b]".
func (g *Group) String() string {
	names := make([]string, len(g.options))
	for i, option := range g.options {
		names[i] = option.String()
	}
	return "[" + strings.Join(names, " | ") + "]"
}
