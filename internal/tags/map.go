package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
	"github.com/mediaflowhq/hlsparse/pkg/playlist/primitives"
)

func registerMap(r *Registry) {
	r.addAttribute("EXT-X-MAP", []string{"URI"}, func(attrs map[string]string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		m := &playlist.Map{URI: attrs["URI"]}

		if resolved, ok := vars.Resolve(m.URI, st.BaseURL); ok {
			m.ResolvedURI = resolved
		} else {
			warn("could not resolve EXT-X-MAP URI: " + m.URI)
			m.ResolvedURI = m.URI
		}

		if br, ok := attrs["BYTERANGE"]; ok {
			var raw primitives.RawByteRange
			if err := raw.Unmarshal(br); err != nil {
				warn("unparsable EXT-X-MAP BYTERANGE: " + br)
			} else {
				var offset uint64
				if raw.Offset != nil {
					offset = *raw.Offset
				}
				m.ByteRange = &playlist.ByteRange{Start: offset, End: offset + raw.Length - 1}
			}
		}

		st.CurrentMap = m
	})
}
