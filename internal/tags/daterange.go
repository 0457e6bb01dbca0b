package tags

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerDateRange(r *Registry) {
	r.addAttribute("EXT-X-DATERANGE", []string{"ID", "START-DATE"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		start, err := parseTimeMillis(attrs["START-DATE"])
		if err != nil {
			warn("unparsable EXT-X-DATERANGE START-DATE: " + attrs["START-DATE"])
			return
		}

		dr := &playlist.DateRange{
			ID:               attrs["ID"],
			Class:            attrs["CLASS"],
			StartDate:        start,
			EndOnNext:        attrs["END-ON-NEXT"] == "YES",
			ClientAttributes: map[string]string{},
		}

		if v, ok := attrs["END-DATE"]; ok {
			end, err := parseTimeMillis(v)
			if err != nil {
				warn("unparsable EXT-X-DATERANGE END-DATE: " + v)
			} else {
				dr.EndDate = &end
			}
		}

		if v, ok := attrs["DURATION"]; ok {
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				warn("unparsable EXT-X-DATERANGE DURATION: " + v)
			} else {
				dr.Duration = &d
			}
		}

		if v, ok := attrs["PLANNED-DURATION"]; ok {
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				warn("unparsable EXT-X-DATERANGE PLANNED-DURATION: " + v)
			} else {
				dr.PlannedDuration = &d
			}
		}

		if v, ok := attrs["SCTE35-CMD"]; ok {
			if b, ok := decodeHex(v, warn, "SCTE35-CMD"); ok {
				dr.SCTE35CMD = b
			}
		}
		if v, ok := attrs["SCTE35-OUT"]; ok {
			if b, ok := decodeHex(v, warn, "SCTE35-OUT"); ok {
				dr.SCTE35OUT = b
			}
		}
		if v, ok := attrs["SCTE35-IN"]; ok {
			if b, ok := decodeHex(v, warn, "SCTE35-IN"); ok {
				dr.SCTE35IN = b
			}
		}

		for k, v := range attrs {
			if strings.HasPrefix(k, "X-") {
				dr.ClientAttributes[k] = v
			}
		}

		pl.DateRanges = append(pl.DateRanges, dr)
	})
}

func decodeHex(v string, warn diag.WarnFunc, attr string) ([]byte, bool) {
	s := strings.TrimPrefix(v, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		warn("unparsable EXT-X-DATERANGE " + attr + ": " + v)
		return nil, false
	}
	return b, true
}
