/*
Package stml compiles STML pages to HTML.

STML is a small declarative markup language for user-authored pages. A page
starts with the preamble "<!doctype stml>", followed by top-level tags. Closing
tags are the anonymous token "</>":

    <!doctype stml>
    <stml>
      <head><title>Hello</></>
      <body>
        <text style=big textColor=red>Hello World</>
        <image source=img\cat.png to=otheruser.zed\page2 />
      </>
    </>
    <sss>
      <class id=big textSize=24 />
    </>

The top-level tag "stml" holds the page content, the optional top-level tag
"sss" defines CSS classes. Compiling a page means parsing it (package syntax),
rendering the class definitions into a style block and rendering the content
to HTML (package render). Styling attributes are turned into CSS by package
style, references are rewritten by package urlrw.

Compilation is a pure function of the page text and the page root, the path
prefix under which the pages of all tenants are served. A Compiler holds no
mutable state and may be used from multiple goroutines.

Configuration

A Compiler may be configured from a configuration source, using keys

    stml.pageroot    page root (default "/browse")
    stml.maxdepth    maximum nesting depth of elements (default 256)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stml

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stml'.
func tracer() tracing.Trace {
	return tracing.Select("stml")
}
