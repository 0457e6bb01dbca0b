package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerSession(r *Registry) {
	r.addAttribute("EXT-X-SESSION-DATA", []string{"DATA-ID"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		_, hasValue := attrs["VALUE"]
		_, hasURI := attrs["URI"]
		if !hasValue && !hasURI {
			warn("EXT-X-SESSION-DATA requires one of VALUE or URI")
			return
		}

		pl.SessionData[attrs["DATA-ID"]] = &playlist.SessionData{
			DataID:   attrs["DATA-ID"],
			Value:    attrs["VALUE"],
			URI:      attrs["URI"],
			Language: attrs["LANGUAGE"],
		}
	})

	r.addAttribute("EXT-X-SESSION-KEY", []string{"METHOD"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		key, ok := decodeKey(attrs, warn)
		if !ok {
			return
		}
		pl.SessionKeys = append(pl.SessionKeys, key)
	})

	r.addAttribute("EXT-X-CONTENT-STEERING", []string{"SERVER-URI"}, func(attrs map[string]string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		pl.ContentSteering = &playlist.ContentSteering{
			ServerURI: attrs["SERVER-URI"],
			PathwayID: attrs["PATHWAY-ID"],
		}
	})
}
