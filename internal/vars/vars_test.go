package vars

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func TestSubstituteKnownVariable(t *testing.T) {
	define := playlist.NewDefine()
	define.Name["host"] = "https://cdn.example/"

	out := Substitute("{$host}a.ts", define, nil)
	require.Equal(t, "https://cdn.example/a.ts", out)
}

func TestSubstituteUnknownVariableLeftLiteralAndWarns(t *testing.T) {
	define := playlist.NewDefine()

	var warnings []string
	out := Substitute("{$missing}a.ts", define, func(m string) { warnings = append(warnings, m) })

	require.Equal(t, "{$missing}a.ts", out)
	require.Len(t, warnings, 1)
}

func TestSubstitutePrecedenceNameImportQueryParam(t *testing.T) {
	define := playlist.NewDefine()
	define.Import["x"] = "import-value"
	define.QueryParam["x"] = "query-value"

	require.Equal(t, "import-value", Substitute("{$x}", define, nil))

	define.Name["x"] = "name-value"
	require.Equal(t, "name-value", Substitute("{$x}", define, nil))
}

func TestSubstituteAttrsReplacesEveryValue(t *testing.T) {
	define := playlist.NewDefine()
	define.Name["v"] = "1"

	attrs := map[string]string{"A": "{$v}", "B": "static"}
	out := SubstituteAttrs(attrs, define, nil)

	require.Equal(t, "1", out["A"])
	require.Equal(t, "static", out["B"])
}

func TestResolveRelativeURI(t *testing.T) {
	resolved, ok := Resolve("a.ts", "https://cdn.example/path/index.m3u8")
	require.True(t, ok)
	require.Equal(t, "https://cdn.example/path/a.ts", resolved)
}

func TestResolveEmptyBaseURLFails(t *testing.T) {
	_, ok := Resolve("a.ts", "")
	require.False(t, ok)
}

func TestLookupDefinePrecedence(t *testing.T) {
	define := playlist.NewDefine()
	define.QueryParam["q"] = "qv"

	v, ok := LookupDefine("q", define)
	require.True(t, ok)
	require.Equal(t, "qv", v)

	_, ok = LookupDefine("missing", define)
	require.False(t, ok)
}
