/*
Package thedom is a server-side element model for generating HTML.

Pages are trees of elements (package dom). Trees are either put together in
code, stamped out from templates by factories (packages template and
factory), or parsed from existing HTML (package parser). Rendering a tree
produces HTML, compact or formatted.

This package bundles the parts for the common cases:

    root, warnings := thedom.ParseHTML(`<ul><li>one<li>two</ul>`)
    for _, w := range warnings {
        log.Println(w)
    }
    fmt.Println(root.ToHTML(true))

    page, err := thedom.BuildFromXML(`<field id="age" text="Age"><textbox id="years"/></field>`)

The default factory (see Factory) knows the widgets of package elements and
plain elements for common HTML tags.

Tracing

Packages trace to selectors of the form 'thedom.<package>', e.g.
'thedom.parser' for warnings about malformed HTML. Clients set up tracing
with package github.com/npillmayer/schuko/tracing.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package thedom
