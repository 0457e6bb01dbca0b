package tags

import (
	"strconv"
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerKey(r *Registry) {
	r.addAttribute("EXT-X-KEY", []string{"METHOD"}, func(attrs map[string]string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		key, ok := decodeKey(attrs, warn)
		if !ok {
			return
		}
		st.CurrentEncryption = key
	})
}

func decodeKey(attrs map[string]string, warn diag.WarnFunc) (*playlist.Key, bool) {
	method := playlist.KeyMethod(attrs["METHOD"])
	switch method {
	case playlist.KeyMethodNone, playlist.KeyMethodAES128, playlist.KeyMethodSampleAES:
	default:
		warn("unsupported EXT-X-KEY METHOD: " + attrs["METHOD"])
		return nil, false
	}

	key := &playlist.Key{
		Method:    method,
		URI:       attrs["URI"],
		IV:        attrs["IV"],
		KeyFormat: attrs["KEYFORMAT"],
	}

	if method != playlist.KeyMethodNone && key.URI == "" {
		warn("EXT-X-KEY missing required URI for METHOD " + string(method))
		return nil, false
	}

	if v, ok := attrs["KEYFORMATVERSIONS"]; ok {
		var versions []int
		for _, s := range strings.Split(v, "/") {
			n, err := strconv.Atoi(s)
			if err != nil {
				warn("unparsable EXT-X-KEY KEYFORMATVERSIONS entry: " + s)
				continue
			}
			versions = append(versions, n)
		}
		key.KeyFormatVersions = versions
	} else {
		key.KeyFormatVersions = []int{1}
	}

	return key, true
}
