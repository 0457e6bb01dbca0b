// Package vars implements {$NAME} variable substitution and RFC 3986 URI
// resolution against a playlist's base URL.
package vars

import (
	"net/url"
	"regexp"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

var pattern = regexp.MustCompile(`\{\$([A-Za-z0-9_-]+)\}`)

// lookup resolves a variable name against playlist-defined variables,
// imports and query-param variables, in that order.
func lookup(name string, define playlist.Define) (string, bool) {
	if v, ok := define.Name[name]; ok {
		return v, true
	}
	if v, ok := define.Import[name]; ok {
		return v, true
	}
	if v, ok := define.QueryParam[name]; ok {
		return v, true
	}
	return "", false
}

// LookupDefine resolves name against a Define's three variable scopes, in
// the same name/import/query-param precedence Substitute uses.
func LookupDefine(name string, define playlist.Define) (string, bool) {
	return lookup(name, define)
}

// Substitute replaces every {$NAME} occurrence in s with its defined
// value. An undefined {$NAME} triggers one warning per occurrence and is
// left in the output unchanged rather than partially replaced.
func Substitute(s string, define playlist.Define, warn diag.WarnFunc) string {
	return pattern.ReplaceAllStringFunc(s, func(match string) string {
		name := pattern.FindStringSubmatch(match)[1]
		if v, ok := lookup(name, define); ok {
			return v
		}
		if warn != nil {
			warn("missing variable: " + name)
		}
		return match
	})
}

// SubstituteAttrs applies Substitute to every value in attrs, in place,
// and also returns attrs for convenience.
func SubstituteAttrs(attrs map[string]string, define playlist.Define, warn diag.WarnFunc) map[string]string {
	for k, v := range attrs {
		attrs[k] = Substitute(v, define, warn)
	}
	return attrs
}

// Resolve resolves uri against baseURL per RFC 3986. It returns ok == false
// when baseURL is empty or either URL fails to parse, signaling the caller
// to fall back to the raw uri.
func Resolve(uri string, baseURL string) (string, bool) {
	if baseURL == "" {
		return "", false
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}

	ref, err := url.Parse(uri)
	if err != nil {
		return "", false
	}

	return base.ResolveReference(ref).String(), true
}
