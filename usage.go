package cliopt

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cardinalby/go-cli-opts/opt"
)

// WriteUsage renders a one-line-per-option summary of the catalogue in
// registration order. Required options are marked with '*', value-taking
// options show their type tag (or "value") as a placeholder, and mutually
// exclusive groups are listed after the options. The parse engine never
// calls this; it exists for CLI front-ends rendering help text.
func WriteUsage(w io.Writer, name string, options *opt.Options) error {
	if name == "" {
		if _, err := fmt.Fprintf(w, "Usage:\n"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Usage of %s:\n", name); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, option := range options.All() {
		mark := " "
		if option.IsRequired() {
			mark = "*"
		}
		if _, err := fmt.Fprintf(
			tw, "%s %s%s\t%s\n",
			mark, optionNames(option), valuePlaceholder(option), option.Description(),
		); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, group := range options.Groups() {
		suffix := ""
		if group.IsRequired() {
			suffix = ", one is required"
		}
		if _, err := fmt.Fprintf(w, "mutually exclusive: %s%s\n", group, suffix); err != nil {
			return err
		}
	}
	return nil
}

func optionNames(option *opt.Option) string {
	var names []string
	if option.Short() != "" {
		names = append(names, "-"+option.Short())
	}
	if option.Long() != "" {
		names = append(names, "--"+option.Long())
	}
	return strings.Join(names, ", ")
}

func valuePlaceholder(option *opt.Option) string {
	if !option.HasArg() {
		return ""
	}
	tag := option.Type()
	if tag == "" {
		tag = "value"
	}
	return " <" + tag + ">"
}
