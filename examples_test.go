package cliopt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardinalby/go-cli-opts/flatten"
	"github.com/cardinalby/go-cli-opts/opt"
)

func TestArchiverExample(t *testing.T) {
	options := opt.NewOptions()
	require.NoError(t, options.Add(opt.New("v", "verbose", "print processed entries")))
	require.NoError(t, options.Add(
		opt.New("o", "out", "archive path").WithArgs(1).WithType(opt.TypeFile).WithRequired(true),
	))
	require.NoError(t, options.Add(
		opt.New("x", "exclude", "glob patterns to skip").WithArgs(opt.UnlimitedArgs),
	))
	require.NoError(t, options.AddGroup(opt.NewGroup(
		opt.New("z", "gzip", "gzip compression"),
		opt.New("j", "bzip2", "bzip2 compression"),
	)))

	res, err := Parse(options, []string{
		"--out=backup.tar", "-z", "-x", "*.tmp", "*.log", "--", "src", "docs",
	})
	require.NoError(t, err)
	require.Equal(t, "backup.tar", res.Value("out"))
	require.True(t, res.Has("gzip"))
	require.False(t, res.Has("bzip2"))
	require.Equal(t, []string{"*.tmp", "*.log"}, res.Values("exclude"))
	require.Equal(t, []string{"src", "docs"}, res.Args())
}

func TestGrepLikeExample(t *testing.T) {
	// bundled short flags, classic POSIX style
	options, err := opt.FromPattern("inrE:")
	require.NoError(t, err)

	parser := NewParser(flatten.DialectBundling)
	res, err := parser.Parse(options, []string{"-inr", "-E", "a+b", "file.txt"})
	require.NoError(t, err)
	require.True(t, res.Has("i"))
	require.True(t, res.Has("n"))
	require.True(t, res.Has("r"))
	require.Equal(t, "a+b", res.Value("E"))
	require.Equal(t, []string{"file.txt"}, res.Args())
}

func TestDeployToolExample(t *testing.T) {
	options := opt.NewOptions()
	require.NoError(t, options.Add(
		opt.New("e", "env", "target environment").WithArgs(1).WithRequired(true),
	))
	require.NoError(t, options.Add(opt.New("d", "dry-run", "plan only")))

	// fallback values for anything the command line leaves out
	defaults := NewProperties().
		Set("env", "staging").
		Set("dry-run", "yes")

	res, err := ParseWith(options, []string{"-e", "prod"}, defaults, false)
	require.NoError(t, err)
	require.Equal(t, "prod", res.Value("env"))
	require.True(t, res.Has("dry-run"), "defaulted in from properties")
}
