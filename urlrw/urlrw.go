/*
Package urlrw rewrites references found in STML attributes.

STML pages live in a multi-tenant address space. A reference whose first
path segment is a tenant name (e.g. "otheruser.zed/page2") addresses another
tenant and is rewritten to an absolute path below the page root. Every other
reference is relative to the current tenant; it loses a single leading slash
and is otherwise left alone. Backslashes count as path separators.

Scheme, authority, query and fragment of a reference are kept as they are;
no escaping or unescaping is done.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package urlrw

import (
	"regexp"
	"strings"
)

var tenantPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{2,60}\.(zed|som|nap)$`)

// IsTenant is a predicate: does a path segment name a tenant?
func IsTenant(segment string) bool {
	return tenantPattern.MatchString(segment)
}

// ValidTenantName checks a name for use as a new tenant. In addition to
// matching the tenant pattern it must not contain consecutive dashes.
func ValidTenantName(name string) bool {
	return IsTenant(name) && !strings.Contains(name, "--")
}

// Rewrite resolves ref with respect to pageRoot.
func Rewrite(ref, pageRoot string) string {
	u := split(strings.ReplaceAll(ref, `\`, "/"))
	first := u.path
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first = first[:i]
	}
	if IsTenant(first) {
		u.path = pageRoot + "/" + u.path
	} else {
		u.path = strings.TrimPrefix(u.path, "/")
	}
	return u.String()
}

// reference is a URL reference split into its components.
type reference struct {
	scheme, authority, path, query, fragment string
	hasAuthority                             bool
}

// split breaks up a reference without validating or unescaping any part of it.
func split(s string) reference {
	var u reference
	if i := strings.IndexByte(s, ':'); i > 0 && isScheme(s[:i]) {
		u.scheme, s = strings.ToLower(s[:i]), s[i+1:]
	}
	if strings.HasPrefix(s, "//") {
		s = s[2:]
		end := strings.IndexAny(s, "/?#")
		if end < 0 {
			end = len(s)
		}
		u.authority, s = s[:end], s[end:]
		u.hasAuthority = true
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s, u.fragment = s[:i], s[i+1:]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s, u.query = s[:i], s[i+1:]
	}
	u.path = s
	return u
}

// isScheme checks for ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}

func (u reference) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority {
		b.WriteString("//")
		b.WriteString(u.authority)
		if u.path != "" && u.path[0] != '/' {
			b.WriteByte('/')
		}
	}
	b.WriteString(u.path)
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}
