package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options shared by all sub-commands.
type options struct {
	cfgFile    string
	traceLevel string
	conf       schuko.Configuration
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "thedom",
		Short:         "thedom parses, builds and inspects HTML element trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := initializeConfig(opts)
			if err != nil {
				return err
			}
			opts.conf = conf
			return initializeTracing(conf)
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "configuration file")
	root.PersistentFlags().StringVar(&opts.traceLevel, "trace", "Error",
		"trace level for all tracers (Debug, Info, Error)")
	root.AddCommand(newParseCmd(opts), newBuildCmd(opts), newDumpCmd(opts))
	return root
}

// initializeConfig reads the configuration file, if any.
func initializeConfig(opts *options) (schuko.Configuration, error) {
	conf := viperadapter.New("thedom")
	conf.InitDefaults()
	if opts.cfgFile != "" {
		viper.SetConfigFile(opts.cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration %s: %w", opts.cfgFile, err)
		}
	}
	conf.Set("tracing.adapter", "go")
	if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", opts.traceLevel)
	}
	for _, sel := range []string{"thedom", "thedom.dom", "thedom.factory", "thedom.parser", "thedom.template"} {
		if key := "tracelevel." + sel; !conf.IsSet(key) {
			conf.Set(key, opts.traceLevel)
		}
	}
	return conf, nil
}

func initializeTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// input reads the file named by the first argument, or stdin.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}
