package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
	"github.com/mediaflowhq/hlsparse/pkg/playlist/primitives"
)

func registerStart(r *Registry) {
	r.addAttribute("EXT-X-START", []string{"TIME-OFFSET"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		offset, err := primitives.SecondsUnmarshal(attrs["TIME-OFFSET"])
		if err != nil {
			warn("unparsable EXT-X-START TIME-OFFSET: " + attrs["TIME-OFFSET"])
			return
		}

		pl.Start = &playlist.Start{
			TimeOffset: offset,
			Precise:    attrs["PRECISE"] == "YES",
		}
	})
}
