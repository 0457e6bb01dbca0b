package tags

import (
	"strconv"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerPreloadHint(r *Registry) {
	r.addAttribute("EXT-X-PRELOAD-HINT", []string{"TYPE", "URI"}, func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		hint := &playlist.PreloadHint{URI: attrs["URI"]}

		if resolved, ok := vars.Resolve(hint.URI, st.BaseURL); ok {
			hint.ResolvedURI = resolved
		} else {
			warn("could not resolve EXT-X-PRELOAD-HINT URI: " + hint.URI)
			hint.ResolvedURI = hint.URI
		}

		var start uint64
		if v, ok := attrs["BYTERANGE-START"]; ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				warn("unparsable EXT-X-PRELOAD-HINT BYTERANGE-START: " + v)
			} else {
				start = n
			}
		}
		hint.Start = start

		if v, ok := attrs["BYTERANGE-LENGTH"]; ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				warn("unparsable EXT-X-PRELOAD-HINT BYTERANGE-LENGTH: " + v)
				hint.OpenEnded = true
			} else {
				hint.Length = &n
			}
		} else {
			hint.OpenEnded = true
		}

		switch attrs["TYPE"] {
		case "PART":
			pl.PreloadHints.Part = hint
		case "MAP":
			pl.PreloadHints.Map = hint
		default:
			warn("unknown EXT-X-PRELOAD-HINT TYPE: " + attrs["TYPE"])
		}
	})
}
