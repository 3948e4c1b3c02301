/*
Package ast defines the node tree of an STML document.

Overview

STML is a small declarative markup language for user-authored pages. A parsed
page is a Document: the ordered sequence of top-level elements found after the
doctype preamble. The tree is made of exactly two kinds of nodes, *Element and
Text, and clients are expected to dispatch with a type switch:

    switch n := node.(type) {
    case *ast.Element:
        …
    case ast.Text:
        …
    }

Trees are built once by package syntax and are never mutated afterwards. They
carry no references to shared state, so independent trees may be processed
concurrently.

Nesting Depth

Both the parser and the renderers bound the nesting depth of elements. Exceeding
the bound is reported as a *DepthError, which matches ErrDepthExceeded with
errors.Is.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
