package opt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsAdd(t *testing.T) {
	t.Parallel()

	t.Run("duplicate short name", func(t *testing.T) {
		options := NewOptions()
		require.NoError(t, options.Add(New("a", "", "")))
		err := options.Add(New("a", "alpha", ""))
		var dup *DuplicateNameError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "a", dup.Name)
		require.Nil(t, options.Lookup("alpha"), "failed Add must not register any name")
	})

	t.Run("duplicate long name", func(t *testing.T) {
		options := NewOptions()
		require.NoError(t, options.Add(New("a", "alpha", "")))
		var dup *DuplicateNameError
		require.ErrorAs(t, options.Add(New("b", "alpha", "")), &dup)
		require.Equal(t, "alpha", dup.Name)
	})

	t.Run("no names", func(t *testing.T) {
		require.Error(t, NewOptions().Add(New("", "", "")))
	})

	t.Run("invalid name characters", func(t *testing.T) {
		options := NewOptions()
		require.Error(t, options.Add(New("a b", "", "")))
		require.Error(t, options.Add(New("", "out=file", "")))
	})
}

func TestOptionsLookup(t *testing.T) {
	t.Parallel()

	options := NewOptions()
	verbose := New("v", "verbose", "")
	require.NoError(t, options.Add(verbose))

	require.Same(t, verbose, options.Lookup("v"))
	require.Same(t, verbose, options.Lookup("-v"))
	require.Same(t, verbose, options.Lookup("verbose"))
	require.Same(t, verbose, options.Lookup("--verbose"))
	require.Nil(t, options.Lookup("verb"), "no prefix matching")
	require.Nil(t, options.Lookup("--"))
}

func TestOptionsRequiredKeys(t *testing.T) {
	t.Parallel()

	options := NewOptions()
	require.NoError(t, options.Add(New("a", "", "").WithRequired(true)))
	require.NoError(t, options.Add(New("b", "", "")))
	require.NoError(t, options.Add(New("", "cee", "").WithRequired(true)))

	require.Equal(t, []string{"a", "cee"}, options.RequiredKeys())
}

func TestOptionsGroupOf(t *testing.T) {
	t.Parallel()

	options := NewOptions()
	a := New("a", "", "")
	b := New("b", "", "")
	group := NewGroup(a, b)
	require.NoError(t, options.AddGroup(group))
	require.NoError(t, options.Add(New("c", "", "")))

	require.Same(t, group, options.GroupOf(a))
	require.Same(t, group, options.GroupOf(b))
	require.Nil(t, options.GroupOf(options.Lookup("c")))
	require.Same(t, a, options.Lookup("a"), "group members are registered by AddGroup")
}

func TestOptionsAddGroupRejectsSecondMembership(t *testing.T) {
	t.Parallel()

	options := NewOptions()
	a := New("a", "", "")
	first := NewGroup(a, New("b", "", ""))
	require.NoError(t, options.AddGroup(first))

	second := NewGroup(a, New("c", "", ""))
	require.Error(t, options.AddGroup(second))
	require.Same(t, first, options.GroupOf(a), "membership must stay with the first group")
	require.Nil(t, options.Lookup("c"), "failed AddGroup must not register any member")
}

func TestOptionsReset(t *testing.T) {
	t.Parallel()

	options := NewOptions()
	o := New("o", "", "").WithArgs(1)
	require.NoError(t, options.Add(o))
	a := New("a", "", "")
	group := NewGroup(a, New("b", "", ""))
	require.NoError(t, options.AddGroup(group))

	require.NoError(t, o.AddValue("x"))
	require.NoError(t, group.Select(a))

	options.Reset()
	require.False(t, o.HasValue())
	require.Empty(t, group.Selected())
}
