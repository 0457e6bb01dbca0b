package attrlex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexAttributeList(t *testing.T) {
	attrs, isBare := Lex(`BANDWIDTH=1200000,RESOLUTION=640x360,CODECS="avc1.4d401e,mp4a.40.2"`)
	require.False(t, isBare)
	require.Equal(t, map[string]string{
		"BANDWIDTH":  "1200000",
		"RESOLUTION": "640x360",
		"CODECS":     "avc1.4d401e,mp4a.40.2",
	}, attrs)
}

func TestLexBareValue(t *testing.T) {
	attrs, isBare := Lex("5.0,some title")
	require.True(t, isBare)
	require.Nil(t, attrs)
}

func TestLexQuotedCommaCountStable(t *testing.T) {
	withCommas, _ := Lex(`A="x,y,z",B=2`)
	withoutCommas, _ := Lex(`A="xyz",B=2`)
	require.Len(t, withCommas, 2)
	require.Len(t, withoutCommas, 2)
}

func TestLexSingleAttributeNoTrailingComma(t *testing.T) {
	attrs, isBare := Lex(`URI="init.mp4"`)
	require.False(t, isBare)
	require.Equal(t, map[string]string{"URI": "init.mp4"}, attrs)
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "abc", unquote(`"abc"`))
	require.Equal(t, "abc", unquote("abc"))
	require.Equal(t, "0x1A", unquote("0x1A"))
}
