package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"

	"github.com/npillmayer/thedom"
	"github.com/npillmayer/thedom/dom"
	"github.com/npillmayer/thedom/dom/domdbg"
	"github.com/npillmayer/thedom/dom/w3cdom"
	"github.com/npillmayer/thedom/factory"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCmd(opts *options) *cobra.Command {
	var minified bool
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse HTML and render it again",
		Long: `Parses (possibly malformed) HTML from a file or stdin and renders the
resulting element tree. Recoveries from malformed input are reported on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			root := parseWithWarnings(cmd, opts, src)
			out, err := thedom.Render(root, minified)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&minified, "minify", "m", false, "minify the output")
	return cmd
}

func newBuildCmd(opts *options) *cobra.Command {
	var varsFile, prefix string
	var minified bool
	cmd := &cobra.Command{
		Use:   "build <template>",
		Short: "Build an element tree from a template and render it",
		Long: `Builds an element tree from a template file (.xml, .shpaml, .yaml) with
the default factory. Values for input elements may be given as a YAML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bopts []factory.BuildOption
			if varsFile != "" {
				vars, err := readVars(varsFile)
				if err != nil {
					return err
				}
				bopts = append(bopts, factory.WithVariables(vars))
			}
			if prefix != "" {
				bopts = append(bopts, factory.WithIDPrefix(prefix))
			}
			n, err := thedom.BuildFromFile(args[0], bopts...)
			if err != nil {
				return err
			}
			out, err := thedom.Render(n, minified)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&varsFile, "vars", "", "YAML file with values for input elements")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for ids and names")
	cmd.Flags().BoolVarP(&minified, "minify", "m", false, "minify the output")
	return cmd
}

func newDumpCmd(opts *options) *cobra.Command {
	var dot bool
	var selector string
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Show the element tree of an HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			root := parseWithWarnings(cmd, opts, src)
			out := cmd.OutOrStdout()
			switch {
			case selector != "":
				widgets, err := w3cdom.Query(root, selector)
				if err != nil {
					return err
				}
				for _, w := range widgets {
					fmt.Fprintln(out, w.ToHTML(false))
				}
			case dot:
				return domdbg.ToGraphViz(root, out)
			default:
				fmt.Fprint(out, domdbg.Dump(root))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "output a GraphViz diagram")
	cmd.Flags().StringVarP(&selector, "select", "s", "", "print the elements matching a CSS selector")
	return cmd
}

func parseWithWarnings(cmd *cobra.Command, opts *options, src string) *dom.Element {
	root, warnings := thedom.ParseHTMLWith(opts.conf, src)
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	return root
}

func readVars(path string) (dom.Vars, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vars := dom.Vars{}
	if err := yaml.Unmarshal(b, &vars); err != nil {
		return nil, fmt.Errorf("variables file %s: %w", path, err)
	}
	return vars, nil
}
