package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
	"github.com/mediaflowhq/hlsparse/pkg/playlist/primitives"
)

func registerServerControl(r *Registry) {
	r.addAttribute("EXT-X-SERVER-CONTROL", nil, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		sc := &playlist.ServerControl{
			CanBlockReload:    attrs["CAN-BLOCK-RELOAD"] == "YES",
			CanSkipDateRanges: attrs["CAN-SKIP-DATERANGES"] == "YES",
		}

		if v, ok := attrs["CAN-SKIP-UNTIL"]; ok {
			d, err := primitives.SecondsUnmarshal(v)
			if err != nil {
				warn("unparsable EXT-X-SERVER-CONTROL CAN-SKIP-UNTIL: " + v)
			} else {
				sc.CanSkipUntil = &d
			}
		}

		if v, ok := attrs["HOLD-BACK"]; ok {
			d, err := primitives.SecondsUnmarshal(v)
			if err != nil {
				warn("unparsable EXT-X-SERVER-CONTROL HOLD-BACK: " + v)
			} else {
				sc.HoldBack = &d
			}
		}

		if v, ok := attrs["PART-HOLD-BACK"]; ok {
			d, err := primitives.SecondsUnmarshal(v)
			if err != nil {
				warn("unparsable EXT-X-SERVER-CONTROL PART-HOLD-BACK: " + v)
			} else {
				sc.PartHoldBack = &d
			}
		}

		pl.ServerControl = sc
	})
}
