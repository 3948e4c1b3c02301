/*
Package cssom provides a minimal CSS object model for STML stylesheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. STML documents
may carry a stylesheet root, the children of which define CSS classes. Those
classes are collected into a StyleSheet and formatted into the <style> block
of the compiled page.

CSS handling is de-coupled by introducing the interfaces StyleSheet and Rule.
A concrete implementation may be found in sub-package douceuradapter. The same
interfaces are used to inspect <style> blocks of compiled HTML.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
