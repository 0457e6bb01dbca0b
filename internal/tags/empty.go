package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerEmpty(r *Registry) {
	r.addEmpty("EXTM3U", func(pl *playlist.Playlist, _ *state.State) {
		pl.M3U = true
	})

	r.addEmpty("EXT-X-INDEPENDENT-SEGMENTS", func(pl *playlist.Playlist, _ *state.State) {
		pl.IndependentSegments = true
	})

	r.addEmpty("EXT-X-ENDLIST", func(pl *playlist.Playlist, _ *state.State) {
		pl.EndList = true
	})

	r.addEmpty("EXT-X-I-FRAMES-ONLY", func(pl *playlist.Playlist, _ *state.State) {
		pl.IFramesOnly = true
	})

	r.addEmpty("EXT-X-DISCONTINUITY", func(_ *playlist.Playlist, st *state.State) {
		st.CurrentSegment.IsDiscontinuity = true
	})

	r.addEmpty("EXT-X-GAP", func(_ *playlist.Playlist, st *state.State) {
		st.CurrentSegment.IsGap = true
	})
}
