/*
Package style synthesizes CSS from the styling attributes of STML elements.

STML authors do not write CSS. Instead, elements carry a fixed vocabulary of
semantic attributes (textColor, marginVertical, shadowAlpha, …), which are
mapped onto CSS declarations by Synthesize. Several attributes may write the
same CSS property; conflicts are resolved by a specificity rank, where lower
ranks take precedence:

    rank 0   attributes addressing a single property (marginTop)
    rank 1   attributes addressing an axis (marginVertical)
    rank 2   shorthands (margin)

A write is dropped if a more specific value is already present. Otherwise it
replaces the stored value, keeping the position the property was first
created at. Declarations are output in that order.

Shadow attributes do not map to properties individually. They are collected
per element by a Shadow and collapse into a single box-shadow declaration.

Synthesis works on fresh state for every element and is safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stml.style'.
func tracer() tracing.Trace {
	return tracing.Select("stml.style")
}
