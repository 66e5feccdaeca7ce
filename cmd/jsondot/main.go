// Command jsondot queries and edits JSON documents with dotted paths.
//
//	jsondot get -f config.json apps.browsers.chrome
//	jsondot set -f config.json apps.browsers.firefox 2
//	jsondot del -f config.json apps.browsers.chrome
//	jsondot keys -f config.json apps.browsers
//
// Without -f the document is read from stdin and results are written
// to stdout; with -f, set and del rewrite the file in place.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsondot/jsondot"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	file   string
	pretty bool
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "jsondot",
		Short:         "Query and edit JSON documents with dotted paths.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "JSON file to operate on (default: stdin)")
	root.PersistentFlags().BoolVarP(&a.pretty, "pretty", "p", false, "pretty-print JSON output")

	root.AddCommand(
		newGetCommand(a),
		newSetCommand(a),
		newDelCommand(a),
		newKeysCommand(a),
	)
	return root
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dotted path.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			value, ok := doc.Lookup(args[0])
			if !ok {
				return fmt.Errorf("path %q not found", args[0])
			}
			out, err := jsondot.New(value)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), out)
		},
	}
}

func newSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Store a value at a dotted path, creating intermediate containers.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			// The value argument decodes as JSON when possible, so
			// `set k [1,2]` stores an array and `set k text` a string.
			if err := doc.Set(args[0], args[1]); err != nil {
				return err
			}
			return a.store(cmd.OutOrStdout(), doc)
		},
	}
}

func newDelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "del <path>",
		Short: "Remove the value at a dotted path.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			if err := doc.Unset(args[0]); err != nil {
				return err
			}
			return a.store(cmd.OutOrStdout(), doc)
		},
	}
}

func newKeysCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [path]",
		Short: "List the child keys of the container at a dotted path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			keys, err := doc.Keys(args...)
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), colorKey(k))
			}
			return nil
		},
	}
}

// load reads the document from the configured file or stdin. The
// set and del commands always attempt JSON decoding of string values.
func (a *app) load() (*jsondot.Document, error) {
	var data []byte
	var err error
	if a.file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(a.file)
	}
	if err != nil {
		return nil, err
	}
	return jsondot.New(data, jsondot.DecodeStrings())
}

// store writes the mutated document back to the file, or to w when
// reading from stdin.
func (a *app) store(w io.Writer, doc *jsondot.Document) error {
	out, err := doc.JSON(jsondot.Indent(2), jsondot.EscapeHTML(false))
	if err != nil {
		return err
	}
	if a.file == "" {
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return os.WriteFile(a.file, append(out, '\n'), 0o644)
}

func (a *app) print(w io.Writer, doc *jsondot.Document) error {
	opts := []jsondot.EncodeOption{jsondot.EscapeHTML(false)}
	if a.pretty {
		opts = append(opts, jsondot.Indent(2))
	}
	out, err := doc.JSON(opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, colorJSON(string(out)))
	return err
}
