/*
Package pages resolves request paths to STML pages.

Pages are stored as a tree of files, one top-level directory per tenant.
A path may address

    a file ending in .stm or .stml    the file is an STML document
    a directory with a main page      main.stm (or else main.stml) is the document
    any other directory               a listing of the directory's entries
    any other file                    an asset, served as is

Paths are interpreted relative to the root of the tree and must not leave it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pages

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stml.pages'.
func tracer() tracing.Trace {
	return tracing.Select("stml.pages")
}
