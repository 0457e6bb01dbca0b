package tags

import (
	"strconv"
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func parseResolution(v string, warn diag.WarnFunc) *playlist.Resolution {
	w, h, found := strings.Cut(v, "x")
	if !found {
		warn("unparsable RESOLUTION: " + v)
		return nil
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		warn("unparsable RESOLUTION: " + v)
		return nil
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		warn("unparsable RESOLUTION: " + v)
		return nil
	}
	return &playlist.Resolution{Width: width, Height: height}
}

func registerStream(r *Registry) {
	r.addAttribute("EXT-X-STREAM-INF", []string{"BANDWIDTH"}, func(attrs map[string]string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		st.IsMultivariantPlaylist = true

		bw, err := strconv.Atoi(attrs["BANDWIDTH"])
		if err != nil {
			warn("unparsable EXT-X-STREAM-INF BANDWIDTH: " + attrs["BANDWIDTH"])
			return
		}

		v := st.CurrentVariant
		v.Bandwidth = bw

		if av, ok := attrs["AVERAGE-BANDWIDTH"]; ok {
			n, err := strconv.Atoi(av)
			if err != nil {
				warn("unparsable EXT-X-STREAM-INF AVERAGE-BANDWIDTH: " + av)
			} else {
				v.AverageBandwidth = &n
			}
		}

		if c, ok := attrs["CODECS"]; ok {
			v.Codecs = strings.Split(c, ",")
		}

		if res, ok := attrs["RESOLUTION"]; ok {
			v.Resolution = parseResolution(res, warn)
		}

		if fr, ok := attrs["FRAME-RATE"]; ok {
			f, err := strconv.ParseFloat(fr, 64)
			if err != nil {
				warn("unparsable EXT-X-STREAM-INF FRAME-RATE: " + fr)
			} else {
				v.FrameRate = &f
			}
		}

		v.HDCPLevel = attrs["HDCP-LEVEL"]
		v.Video = attrs["VIDEO"]
		v.Audio = attrs["AUDIO"]
		v.Subtitles = attrs["SUBTITLES"]
		v.ClosedCaptions = attrs["CLOSED-CAPTIONS"]
	})

	r.addAttribute("EXT-X-I-FRAME-STREAM-INF", []string{"BANDWIDTH", "URI"}, func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		st.IsMultivariantPlaylist = true

		bw, err := strconv.Atoi(attrs["BANDWIDTH"])
		if err != nil {
			warn("unparsable EXT-X-I-FRAME-STREAM-INF BANDWIDTH: " + attrs["BANDWIDTH"])
			return
		}

		p := &playlist.IFramePlaylist{Bandwidth: bw, URI: attrs["URI"]}

		if resolved, ok := vars.Resolve(p.URI, st.BaseURL); ok {
			p.ResolvedURI = resolved
		} else {
			warn("could not resolve EXT-X-I-FRAME-STREAM-INF URI: " + p.URI)
			p.ResolvedURI = p.URI
		}

		if av, ok := attrs["AVERAGE-BANDWIDTH"]; ok {
			n, err := strconv.Atoi(av)
			if err != nil {
				warn("unparsable EXT-X-I-FRAME-STREAM-INF AVERAGE-BANDWIDTH: " + av)
			} else {
				p.AverageBandwidth = &n
			}
		}

		if c, ok := attrs["CODECS"]; ok {
			p.Codecs = strings.Split(c, ",")
		}

		if res, ok := attrs["RESOLUTION"]; ok {
			p.Resolution = parseResolution(res, warn)
		}

		p.Video = attrs["VIDEO"]

		pl.IFramePlaylists = append(pl.IFramePlaylists, p)
	})
}
