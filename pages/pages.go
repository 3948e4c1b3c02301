package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/stml/urlrw"
	"golang.org/x/net/html"
)

// Errors returned by Lookup.
var (
	ErrNotFound    = errors.New("page not found")
	ErrOutsideRoot = errors.New("path outside of page tree")
)

// Kind classifies the result of a lookup.
type Kind int

// Kinds of pages.
const (
	Document Kind = iota // STML source
	Listing              // directory without a main page
	Asset                // any other file
)

func (k Kind) String() string {
	switch k {
	case Document:
		return "document"
	case Listing:
		return "listing"
	case Asset:
		return "asset"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MainPages are the file names of the main page of a directory, in order of
// preference.
var MainPages = []string{"main.stm", "main.stml"}

// Page is the result of a lookup.
type Page struct {
	Kind    Kind
	Path    string   // path of the file or directory in the page tree
	Content []byte   // document source or asset content
	Entries []string // directory entries of a listing
}

// Provider looks up pages in a file tree.
type Provider struct {
	fsys fs.FS
	root string // resolved directory for providers created by NewDir
}

// New creates a provider for a page tree.
func New(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys}
}

// NewDir creates a provider for a page tree in the local file system.
// Symbolic links are followed only as long as their targets stay inside
// root.
func NewDir(root string) (*Provider, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if abs, err = filepath.EvalSymlinks(abs); err != nil {
		return nil, err
	}
	tracer().Debugf("page tree at %s", abs)
	return &Provider{fsys: os.DirFS(abs), root: abs}, nil
}

// contain checks that name, with all symbolic links resolved, denotes a
// location inside the page tree.
func (p *Provider) contain(name string) error {
	if p.root == "" {
		return nil
	}
	resolved, err := filepath.EvalSymlinks(filepath.Join(p.root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return err
	}
	rel, err := filepath.Rel(p.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		tracer().Infof("%s resolves to %s, outside of page tree", name, resolved)
		return fmt.Errorf("%w: %q", ErrOutsideRoot, name)
	}
	return nil
}

// checkTenant rejects paths whose first segment looks like a tenant but
// is not a valid tenant name.
func checkTenant(name string) error {
	seg := name
	if i := strings.IndexByte(name, '/'); i >= 0 {
		seg = name[:i]
	}
	if urlrw.IsTenant(seg) && !urlrw.ValidTenantName(seg) {
		return fmt.Errorf("%w: invalid tenant %q", ErrNotFound, seg)
	}
	return nil
}

// Clean converts a request path into a path of the page tree. Leading and
// trailing slashes are ignored, an empty path addresses the root.
func Clean(reqpath string) (string, error) {
	p := strings.Trim(reqpath, "/")
	if p == "" || p == "." {
		return ".", nil
	}
	if !fs.ValidPath(p) {
		if c := path.Clean(p); fs.ValidPath(c) {
			return c, nil
		}
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, reqpath)
	}
	return p, nil
}

// IsDocument is a predicate: does a file name denote an STML document?
func IsDocument(name string) bool {
	ext := path.Ext(name)
	return ext == ".stm" || ext == ".stml"
}

// Lookup resolves a request path.
func (p *Provider) Lookup(reqpath string) (*Page, error) {
	name, err := Clean(reqpath)
	if err != nil {
		return nil, err
	}
	if err = checkTenant(name); err != nil {
		return nil, err
	}
	if err = p.contain(name); err != nil {
		return nil, err
	}
	info, err := fs.Stat(p.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, reqpath)
		}
		return nil, err
	}
	if !info.IsDir() {
		content, err := fs.ReadFile(p.fsys, name)
		if err != nil {
			return nil, err
		}
		kind := Asset
		if IsDocument(name) {
			kind = Document
		}
		tracer().Debugf("lookup %q: %s %s", reqpath, kind, name)
		return &Page{Kind: kind, Path: name, Content: content}, nil
	}
	for _, main := range MainPages {
		mainpath := path.Join(name, main)
		if info, err := fs.Stat(p.fsys, mainpath); err == nil && !info.IsDir() {
			if err = p.contain(mainpath); err != nil {
				return nil, err
			}
			content, err := fs.ReadFile(p.fsys, mainpath)
			if err != nil {
				return nil, err
			}
			tracer().Debugf("lookup %q: main page %s", reqpath, mainpath)
			return &Page{Kind: Document, Path: mainpath, Content: content}, nil
		}
	}
	entries, err := fs.ReadDir(p.fsys, name)
	if err != nil {
		return nil, err
	}
	page := &Page{Kind: Listing, Path: name}
	for _, e := range entries {
		page.Entries = append(page.Entries, e.Name())
	}
	tracer().Debugf("lookup %q: listing of %d entries", reqpath, len(page.Entries))
	return page, nil
}

// RenderListing formats directory entries as HTML list items, one per line.
// Entry names are escaped.
func RenderListing(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		e = html.EscapeString(e)
		b.WriteString(`<li><a href="` + e + `/">` + e + "</a></li>\n")
	}
	return b.String()
}

// Compiler compiles STML documents to HTML.
type Compiler interface {
	Compile(document string) (string, error)
}

// Render resolves a request path and produces the response body: compiled
// HTML for documents, a listing for directories and the raw content for assets.
func (p *Provider) Render(reqpath string, c Compiler) ([]byte, *Page, error) {
	page, err := p.Lookup(reqpath)
	if err != nil {
		return nil, nil, err
	}
	switch page.Kind {
	case Document:
		out, err := c.Compile(string(page.Content))
		if err != nil {
			return nil, page, fmt.Errorf("page %s: %w", page.Path, err)
		}
		return []byte(out), page, nil
	case Listing:
		return []byte(RenderListing(page.Entries)), page, nil
	}
	return page.Content, page, nil
}
