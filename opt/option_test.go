package opt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "o", New("o", "output", "").Key())
	require.Equal(t, "output", New("", "output", "").Key())
}

func TestOptionHasName(t *testing.T) {
	t.Parallel()

	o := New("o", "output", "")
	require.True(t, o.HasName("o"))
	require.True(t, o.HasName("-o"))
	require.True(t, o.HasName("output"))
	require.True(t, o.HasName("--output"))
	require.False(t, o.HasName("out"))
	require.False(t, o.HasName(""))

	shortOnly := New("o", "", "")
	require.False(t, shortOnly.HasName("--"))
}

func TestOptionAddValue(t *testing.T) {
	t.Parallel()

	t.Run("no args", func(t *testing.T) {
		o := New("v", "", "")
		err := o.AddValue("x")
		var bindErr *ValueBindError
		require.ErrorAs(t, err, &bindErr)
		require.Equal(t, "x", bindErr.Value)
		require.False(t, o.HasValue())
	})

	t.Run("fixed arity", func(t *testing.T) {
		o := New("o", "", "").WithArgs(2)
		require.NoError(t, o.AddValue("a"))
		require.NoError(t, o.AddValue("b"))
		var bindErr *ValueBindError
		require.ErrorAs(t, o.AddValue("c"), &bindErr)
		require.Equal(t, []string{"a", "b"}, o.Values())
		require.Equal(t, "a", o.Value())
	})

	t.Run("unlimited", func(t *testing.T) {
		o := New("o", "", "").WithArgs(UnlimitedArgs)
		for _, v := range []string{"a", "b", "c", "d"} {
			require.NoError(t, o.AddValue(v))
		}
		require.Equal(t, []string{"a", "b", "c", "d"}, o.Values())
	})
}

func TestOptionClone(t *testing.T) {
	t.Parallel()

	o := New("o", "output", "out file").WithArgs(1).WithRequired(true)
	require.NoError(t, o.AddValue("a"))

	clone := o.Clone()
	require.Equal(t, o.Short(), clone.Short())
	require.Equal(t, o.Long(), clone.Long())
	require.True(t, clone.IsRequired())
	require.False(t, clone.HasValue(), "clone must start with an empty value bag")

	require.NoError(t, clone.AddValue("b"))
	require.Equal(t, []string{"a"}, o.Values(), "clone must not share the value bag")
}

func TestOptionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "-o/--output", New("o", "output", "").String())
	require.Equal(t, "-o", New("o", "", "").String())
	require.Equal(t, "--output", New("", "output", "").String())
}

func TestStripDashes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "o", StripDashes("-o"))
	require.Equal(t, "output", StripDashes("--output"))
	require.Equal(t, "plain", StripDashes("plain"))
	require.Equal(t, "", StripDashes("--"))
	require.Equal(t, "-x", StripDashes("---x"))
}
