/*
Command thedom parses, builds and inspects element trees.

    thedom parse page.html              # re-render sloppy HTML, warnings to stderr
    thedom build form.xml --vars v.yaml # build a tree from a template
    thedom dump page.html --select li   # tree view, DOT diagram or selector matches

Configuration is read from a file given with --config (any format viper
understands); keys 'parser.*' configure the recovery tables of the parser,
keys 'tracelevel.<selector>' set trace levels.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
