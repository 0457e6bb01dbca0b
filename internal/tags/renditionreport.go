package tags

import (
	"strconv"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerRenditionReport(r *Registry) {
	r.addAttribute("EXT-X-RENDITION-REPORT", []string{"URI", "LAST-MSN"}, func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		msn, err := strconv.Atoi(attrs["LAST-MSN"])
		if err != nil {
			warn("unparsable EXT-X-RENDITION-REPORT LAST-MSN: " + attrs["LAST-MSN"])
			return
		}

		report := &playlist.RenditionReport{URI: attrs["URI"], LastMSN: msn}

		if resolved, ok := vars.Resolve(report.URI, st.BaseURL); ok {
			report.ResolvedURI = resolved
		} else {
			warn("could not resolve EXT-X-RENDITION-REPORT URI: " + report.URI)
			report.ResolvedURI = report.URI
		}

		if v, ok := attrs["LAST-PART"]; ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				warn("unparsable EXT-X-RENDITION-REPORT LAST-PART: " + v)
			} else {
				report.LastPart = &n
			}
		}

		pl.RenditionReports = append(pl.RenditionReports, report)
	})
}
