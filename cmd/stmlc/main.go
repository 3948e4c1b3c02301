/*
Command stmlc compiles STML pages to HTML.

Usage:

    stmlc [flags] path

path is either an STML file, or a page directory containing main.stm or
main.stml. The compiled page is written to stdout. Directories without a
main page are listed instead.

Configuration is read from stml.nt (NestedText), if present; flags take
precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/stml"
	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/ast/astdbg"
	"github.com/npillmayer/stml/dom"
	"github.com/npillmayer/stml/pages"
)

var traceKeys = []string{"stml", "stml.syntax", "stml.style", "stml.render", "stml.pages", "stml.dom"}

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: stmlc [flags] path")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Compiles an STML page (file or page directory) to HTML on stdout.")
		flag.PrintDefaults()
	}
	rootFlag := flag.String("root", "", "page root for cross-tenant references (default "+stml.DefaultPageRoot+")")
	depthFlag := flag.Int("depth", 0, "maximum nesting depth of elements")
	astFlag := flag.Bool("ast", false, "print the document tree instead of HTML")
	dotFlag := flag.Bool("dot", false, "print the document tree in GraphViz DOT format instead of HTML")
	checkFlag := flag.Bool("check", false, "re-read the compiled HTML and report findings on stderr")
	traceFlag := flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	conf := koanfadapter.New(nil, "stml", []string{"nt"})
	conf.InitDefaults()
	if *rootFlag != "" {
		conf.Set(stml.KeyPageRoot, *rootFlag)
	}
	if *depthFlag > 0 {
		conf.Set(stml.KeyMaxDepth, *depthFlag)
	}
	initTracing(conf, *traceFlag)
	compiler := stml.NewFromConfig(conf)

	path, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	provider, err := pages.NewDir(filepath.Dir(path))
	if err != nil {
		fatal(err)
	}
	page, err := provider.Lookup(filepath.Base(path))
	if err != nil {
		fatal(err)
	}
	switch page.Kind {
	case pages.Listing:
		fmt.Print(pages.RenderListing(page.Entries))
		return
	case pages.Asset:
		fatal(fmt.Errorf("stmlc: %s is not an STML document", path))
	}

	if *astFlag || *dotFlag {
		doc, err := compiler.Parse(string(page.Content))
		if err != nil {
			fatal(err)
		}
		if *astFlag {
			fmt.Print(ast.Dump(doc))
			return
		}
		if err := astdbg.ToGraphViz(doc, compiler.PageRoot(), os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	html, err := compiler.Compile(string(page.Content))
	if err != nil {
		fatal(err)
	}
	fmt.Println(html)
	if *checkFlag {
		check(html)
	}
}

func initTracing(conf *koanfadapter.KConf, level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	trace2go.ConfigureRoot(conf, "tracelevel")
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(level))
	}
}

func check(html string) {
	doc, err := dom.Parse(html)
	if err != nil {
		fatal(err)
	}
	rules := doc.StyleSheet().Rules()
	_, _ = fmt.Fprintf(os.Stderr, "stmlc: %d style rules\n", len(rules))
	findings := doc.Check()
	for _, f := range findings {
		_, _ = fmt.Fprintf(os.Stderr, "stmlc: %s\n", f)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
