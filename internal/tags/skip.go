package tags

import (
	"strconv"
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerSkip(r *Registry) {
	r.addAttribute("EXT-X-SKIP", []string{"SKIPPED-SEGMENTS"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(attrs["SKIPPED-SEGMENTS"])
		if err != nil {
			warn("unparsable EXT-X-SKIP SKIPPED-SEGMENTS: " + attrs["SKIPPED-SEGMENTS"])
			return
		}

		skip := &playlist.Skip{SkippedSegments: n}

		if v, ok := attrs["RECENTLY-REMOVED-DATERANGES"]; ok && v != "" {
			skip.RecentlyRemovedDateRanges = strings.Split(v, "\t")
		}

		pl.Skip = skip
	})
}
