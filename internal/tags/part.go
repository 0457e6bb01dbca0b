package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
	"github.com/mediaflowhq/hlsparse/pkg/playlist/primitives"
)

func registerPart(r *Registry) {
	r.addAttribute("EXT-X-PART", []string{"URI", "DURATION"}, func(attrs map[string]string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		d, err := primitives.SecondsUnmarshal(attrs["DURATION"])
		if err != nil {
			warn("unparsable EXT-X-PART DURATION: " + attrs["DURATION"])
			return
		}

		part := &playlist.PartialSegment{
			URI:         attrs["URI"],
			Duration:    d,
			Independent: attrs["INDEPENDENT"] == "YES",
			Gap:         attrs["GAP"] == "YES",
		}

		if resolved, ok := vars.Resolve(part.URI, st.BaseURL); ok {
			part.ResolvedURI = resolved
		} else {
			warn("could not resolve EXT-X-PART URI: " + part.URI)
			part.ResolvedURI = part.URI
		}

		if br, ok := attrs["BYTERANGE"]; ok {
			var raw primitives.RawByteRange
			if err := raw.Unmarshal(br); err != nil {
				warn("unparsable EXT-X-PART BYTERANGE: " + br)
			} else {
				var offset uint64
				switch {
				case raw.Offset != nil:
					offset = *raw.Offset
				case len(st.CurrentSegment.Parts) > 0 && st.CurrentSegment.Parts[len(st.CurrentSegment.Parts)-1].ByteRange != nil:
					offset = st.CurrentSegment.Parts[len(st.CurrentSegment.Parts)-1].ByteRange.End + 1
				}
				part.ByteRange = &playlist.ByteRange{Start: offset, End: offset + raw.Length - 1}
			}
		}

		st.CurrentSegment.Parts = append(st.CurrentSegment.Parts, part)
	})

	r.addAttribute("EXT-X-PART-INF", []string{"PART-TARGET"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		d, err := primitives.SecondsUnmarshal(attrs["PART-TARGET"])
		if err != nil {
			warn("unparsable EXT-X-PART-INF PART-TARGET: " + attrs["PART-TARGET"])
			return
		}
		pl.PartInf = &playlist.PartInf{PartTarget: d}
	})
}
