package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerRendition(r *Registry) {
	r.addAttribute("EXT-X-MEDIA", []string{"TYPE", "GROUP-ID", "NAME"}, func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		rt, ok := parseRenditionType(attrs["TYPE"])
		if !ok {
			warn("unknown EXT-X-MEDIA TYPE: " + attrs["TYPE"])
			return
		}

		uri, hasURI := attrs["URI"]
		instreamID, hasInstreamID := attrs["INSTREAM-ID"]

		if rt == playlist.RenditionTypeClosedCaptions {
			if !hasInstreamID {
				warn("EXT-X-MEDIA TYPE=CLOSED-CAPTIONS missing required attribute: INSTREAM-ID")
				return
			}
		} else if !hasURI {
			warn("EXT-X-MEDIA missing required attribute: URI")
			return
		}

		rend := &playlist.Rendition{
			Type:       rt,
			GroupID:    attrs["GROUP-ID"],
			Name:       attrs["NAME"],
			Language:   attrs["LANGUAGE"],
			AssocLang:  attrs["ASSOC-LANGUAGE"],
			InstreamID: instreamID,
			Channels:   attrs["CHANNELS"],
			Default:    attrs["DEFAULT"] == "YES",
			Autoselect: attrs["AUTOSELECT"] == "YES",
			Forced:     attrs["FORCED"] == "YES",
		}

		if hasURI {
			rend.URI = uri
			if resolved, ok := vars.Resolve(uri, st.BaseURL); ok {
				rend.ResolvedURI = resolved
			} else {
				warn("could not resolve EXT-X-MEDIA URI: " + uri)
				rend.ResolvedURI = uri
			}
		}

		pl.RenditionGroups.Add(rend)
	})
}

func parseRenditionType(v string) (playlist.RenditionType, bool) {
	switch v {
	case "AUDIO":
		return playlist.RenditionTypeAudio, true
	case "VIDEO":
		return playlist.RenditionTypeVideo, true
	case "SUBTITLES":
		return playlist.RenditionTypeSubtitles, true
	case "CLOSED-CAPTIONS":
		return playlist.RenditionTypeClosedCaptions, true
	default:
		return "", false
	}
}
