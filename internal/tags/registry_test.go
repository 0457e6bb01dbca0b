package tags

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediaflowhq/hlsparse/internal/scanner"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func dispatchLine(t *testing.T, r *Registry, line string, pl *playlist.Playlist, st *state.State) []string {
	t.Helper()

	sc := scanner.New()
	var warnings []string
	warn := func(m string) { warnings = append(warnings, m) }

	sc.FeedBytes([]byte(line), func(ev scanner.Event) {
		r.Dispatch(ev, pl, st, warn, nil)
	})
	sc.Close(func(ev scanner.Event) {
		r.Dispatch(ev, pl, st, warn, nil)
	})

	return warnings
}

func newRegistryFixture() (*Registry, *playlist.Playlist, *state.State) {
	pl := playlist.New()
	st := state.New("", 0, nil)
	return New(), pl, st
}

func TestDispatchEmptyTag(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXTM3U\n", pl, st)
	require.True(t, pl.M3U)
}

func TestDispatchValueTagTargetDuration(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXT-X-TARGETDURATION:6\n", pl, st)
	require.Equal(t, 6, pl.TargetDuration)
}

func TestDispatchAttributeTagPartInf(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXT-X-PART-INF:PART-TARGET=1.5\n", pl, st)
	require.NotNil(t, pl.PartInf)
	require.Equal(t, 1.5, pl.PartInf.PartTarget)
}

func TestDispatchMissingRequiredAttributeWarns(t *testing.T) {
	r, pl, st := newRegistryFixture()
	warnings := dispatchLine(t, r, "#EXT-X-PART-INF:\n", pl, st)
	require.Nil(t, pl.PartInf)
	require.Len(t, warnings, 1)
}

func TestDispatchIgnoreList(t *testing.T) {
	r, pl, st := newRegistryFixture()
	r.Ignore["EXT-X-ENDLIST"] = struct{}{}
	warnings := dispatchLine(t, r, "#EXT-X-ENDLIST\n", pl, st)
	require.False(t, pl.EndList)
	require.Len(t, warnings, 1)
}

func TestDispatchUnsupportedTagWarns(t *testing.T) {
	r, pl, st := newRegistryFixture()
	warnings := dispatchLine(t, r, "#EXT-X-NOT-A-REAL-TAG:1\n", pl, st)
	require.Len(t, warnings, 1)
}

func TestDispatchKeyCarriesForwardOnSharedState(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXT-X-KEY:METHOD=AES-128,URI=\"k.bin\"\n", pl, st)
	require.NotNil(t, st.CurrentEncryption)
	require.Equal(t, playlist.KeyMethodAES128, st.CurrentEncryption.Method)
	require.Equal(t, []int{1}, st.CurrentEncryption.KeyFormatVersions)
}

func TestDispatchMediaRequiresInstreamIDForClosedCaptions(t *testing.T) {
	r, pl, st := newRegistryFixture()
	warnings := dispatchLine(t, r, "#EXT-X-MEDIA:TYPE=CLOSED-CAPTIONS,GROUP-ID=\"cc\",NAME=\"English\"\n", pl, st)
	require.NotEmpty(t, warnings)
	require.Empty(t, pl.RenditionGroups.ClosedCaptions)
}

func TestDispatchMediaAudioRendition(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=\"aac\",NAME=\"English\",URI=\"audio.m3u8\",DEFAULT=YES\n", pl, st)
	require.Len(t, pl.RenditionGroups.Audio["aac"], 1)
	require.True(t, pl.RenditionGroups.Audio["aac"][0].Default)
}

func TestDispatchDateRangeCollectsClientAttributesAndHex(t *testing.T) {
	r, pl, st := newRegistryFixture()
	dispatchLine(t, r, "#EXT-X-DATERANGE:ID=\"ad1\",START-DATE=\"2023-01-01T00:00:00Z\",SCTE35-OUT=0xFC30,X-CUSTOM=\"v\"\n", pl, st)
	require.Len(t, pl.DateRanges, 1)
	require.Equal(t, []byte{0xFC, 0x30}, pl.DateRanges[0].SCTE35OUT)
	require.Equal(t, "v", pl.DateRanges[0].ClientAttributes["X-CUSTOM"])
}

func TestDispatchDefineNameEnablesSubstitution(t *testing.T) {
	r, pl, st := newRegistryFixture()
	require.False(t, st.HasVariablesForSubstitution)
	dispatchLine(t, r, "#EXT-X-DEFINE:NAME=\"host\",VALUE=\"https://cdn.example/\"\n", pl, st)
	require.True(t, st.HasVariablesForSubstitution)
	require.Equal(t, "https://cdn.example/", pl.Define.Name["host"])
}
