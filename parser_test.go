package hlsparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func TestParseFullMinimalVOD(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:6\n" +
		"#EXTINF:5.0,\n" +
		"a.ts\n" +
		"#EXTINF:5.0,\n" +
		"b.ts\n" +
		"#EXT-X-ENDLIST\n"

	p := New(ParserOptions{})
	pl, err := p.ParseFull([]byte(input), ParseOptions{})
	require.NoError(t, err)

	require.Len(t, pl.Segments, 2)
	require.Equal(t, 0, pl.Segments[0].MediaSequence)
	require.Equal(t, 0.0, pl.Segments[0].StartTime)
	require.Equal(t, 5.0, pl.Segments[0].EndTime)
	require.Equal(t, 5.0, pl.Segments[0].Duration)
	require.Equal(t, "a.ts", pl.Segments[0].URI)
	require.Equal(t, 1, pl.Segments[1].MediaSequence)
	require.True(t, pl.EndList)
}

func TestParseFullDiscontinuity(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:6\n" +
		"#EXTINF:5.0,\n" +
		"a.ts\n" +
		"#EXT-X-DISCONTINUITY\n" +
		"#EXTINF:5.0,\n" +
		"b.ts\n"

	p := New(ParserOptions{})
	pl, err := p.ParseFull([]byte(input), ParseOptions{})
	require.NoError(t, err)

	require.Equal(t, 0, pl.Segments[0].DiscontinuitySequence)
	require.True(t, pl.Segments[1].IsDiscontinuity)
	require.Equal(t, 1, pl.Segments[1].DiscontinuitySequence)
}

func TestParseFullMultivariant(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1200000,RESOLUTION=640x360,CODECS=\"avc1.4d401e,mp4a.40.2\"\n" +
		"low.m3u8\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=3000000,RESOLUTION=1280x720\n" +
		"high.m3u8\n"

	p := New(ParserOptions{})
	pl, err := p.ParseFull([]byte(input), ParseOptions{})
	require.NoError(t, err)

	require.Len(t, pl.Variants, 2)
	require.Equal(t, 1200000, pl.Variants[0].Bandwidth)
	require.Equal(t, []string{"avc1.4d401e", "mp4a.40.2"}, pl.Variants[0].Codecs)
	require.Equal(t, &playlist.Resolution{Width: 640, Height: 360}, pl.Variants[0].Resolution)
	require.True(t, pl.IsMultivariant())
}

func TestParseFullByteRangeImplicitOffset(t *testing.T) {
	input := "#EXTINF:5.0,\n" +
		"#EXT-X-BYTERANGE:1000@0\n" +
		"seg.mp4\n" +
		"#EXTINF:5.0,\n" +
		"#EXT-X-BYTERANGE:1000\n" +
		"seg.mp4\n"

	p := New(ParserOptions{})
	pl, err := p.ParseFull([]byte(input), ParseOptions{})
	require.NoError(t, err)

	require.Equal(t, &playlist.ByteRange{Start: 0, End: 999}, pl.Segments[0].ByteRange)
	require.Equal(t, &playlist.ByteRange{Start: 1000, End: 1999}, pl.Segments[1].ByteRange)
}

func TestParseFullVariableSubstitution(t *testing.T) {
	input := "#EXT-X-DEFINE:NAME=\"host\",VALUE=\"https://cdn.example/\"\n" +
		"#EXTINF:5.0,\n" +
		"{$host}a.ts\n"

	var warnings []string
	p := New(ParserOptions{WarnFunc: func(m string) { warnings = append(warnings, m) }})
	pl, err := p.ParseFull([]byte(input), ParseOptions{BaseURL: ""})
	require.NoError(t, err)

	require.Equal(t, "https://cdn.example/a.ts", pl.Segments[0].URI)
}

func TestParseFullProgressiveChunkingEquivalence(t *testing.T) {
	input := "#EXTM3U\n" +
		"#EXT-X-TARGETDURATION:6\n" +
		"#EXTINF:5.0,\n" +
		"a.ts\n" +
		"#EXTINF:5.0,\n" +
		"b.ts\n" +
		"#EXT-X-ENDLIST\n"

	full, err := New(ParserOptions{}).ParseFull([]byte(input), ParseOptions{})
	require.NoError(t, err)

	for _, size := range []int{1, 3, 7, 1024} {
		p := New(ParserOptions{})
		for i := 0; i < len(input); i += size {
			end := i + size
			if end > len(input) {
				end = len(input)
			}
			require.NoError(t, p.Push([]byte(input[i:end]), ParseOptions{}))
		}
		progressive, err := p.Done()
		require.NoError(t, err)
		require.Equal(t, full, progressive, "chunk size %d", size)
	}
}

func TestParseFullTrailingNewlineIdempotence(t *testing.T) {
	withNewline, err := New(ParserOptions{}).ParseFull([]byte("#EXTM3U\na.ts\n"), ParseOptions{})
	require.NoError(t, err)
	withoutNewline, err := New(ParserOptions{}).ParseFull([]byte("#EXTM3U\na.ts"), ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, withNewline, withoutNewline)
}

func TestParseFullCleanAfterParse(t *testing.T) {
	p := New(ParserOptions{})
	_, err := p.ParseFull([]byte("#EXTM3U\n#EXTINF:5.0,\na.ts\n"), ParseOptions{})
	require.NoError(t, err)

	pl2, err := p.ParseFull([]byte("#EXTM3U\n"), ParseOptions{})
	require.NoError(t, err)
	require.Empty(t, pl2.Segments)
	require.True(t, pl2.M3U)
}

func TestParseFullUnknownVariableWarnsAndLeavesLiteral(t *testing.T) {
	var warnings []string
	p := New(ParserOptions{WarnFunc: func(m string) { warnings = append(warnings, m) }})
	pl, err := p.ParseFull([]byte("#EXT-X-DEFINE:NAME=\"other\",VALUE=\"x\"\n#EXTINF:5.0,\n{$missing}a.ts\n"), ParseOptions{})
	require.NoError(t, err)

	require.Equal(t, "{$missing}a.ts", pl.Segments[0].URI)
	require.NotEmpty(t, warnings)
	require.Contains(t, warnings, "missing variable: missing")
}

func TestParseFullMissingRequiredAttributeSkipsTag(t *testing.T) {
	var warnings []string
	p := New(ParserOptions{WarnFunc: func(m string) { warnings = append(warnings, m) }})
	pl, err := p.ParseFull([]byte("#EXT-X-KEY:URI=\"k.bin\"\n#EXTINF:5.0,\na.ts\n"), ParseOptions{})
	require.NoError(t, err)

	require.Nil(t, pl.Segments[0].Encryption)
	require.NotEmpty(t, warnings)
}

func TestParseFullCustomTagMap(t *testing.T) {
	var seenValue *string
	p := New(ParserOptions{
		CustomTagMap: map[string]CustomTagFunc{
			"EXT-X-VENDOR-FOO": func(tagKey string, value *string, attrs map[string]string, custom map[string]interface{}) {
				seenValue = value
				custom["foo"] = true
			},
		},
	})
	pl, err := p.ParseFull([]byte("#EXT-X-VENDOR-FOO:bar\n"), ParseOptions{})
	require.NoError(t, err)

	require.NotNil(t, seenValue)
	require.Equal(t, "bar", *seenValue)
	require.Equal(t, true, pl.Custom["foo"])
}
