package opt

import "fmt"

// DuplicateNameError is returned by Options.Add when a short or long name is
// already taken by another registered option.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("option name %q is already registered", e.Name)
}

// AlreadySelectedError is returned by Group.Select when a different member of
// the same mutually exclusive group was selected earlier in the parse.
type AlreadySelectedError struct {
	Group     *Group
	Selected  string
	Attempted string
}

func (e *AlreadySelectedError) Error() string {
	return fmt.Sprintf(
		"option %q cannot be used together with already selected option %q from the group %s",
		e.Attempted, e.Selected, e.Group,
	)
}

// ValueBindError is returned by Option.AddValue when the value cannot be
// bound to the option.
type ValueBindError struct {
	Option *Option
	Value  string
	Reason string
}

func (e *ValueBindError) Error() string {
	return fmt.Sprintf("cannot bind value %q to option %s: %s", e.Value, e.Option, e.Reason)
}
