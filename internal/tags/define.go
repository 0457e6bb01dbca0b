package tags

import (
	"net/url"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

func registerDefine(r *Registry) {
	r.addAttribute("EXT-X-DEFINE", nil, func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		name, hasName := attrs["NAME"]
		imp, hasImport := attrs["IMPORT"]
		qp, hasQueryParam := attrs["QUERYPARAM"]

		count := 0
		for _, has := range []bool{hasName, hasImport, hasQueryParam} {
			if has {
				count++
			}
		}
		if count != 1 {
			warn("EXT-X-DEFINE requires exactly one of NAME, IMPORT, QUERYPARAM")
			return
		}

		switch {
		case hasName:
			value, ok := attrs["VALUE"]
			if !ok {
				warn("EXT-X-DEFINE NAME requires VALUE")
				return
			}
			pl.Define.Name[name] = value
			st.HasVariablesForSubstitution = true

		case hasImport:
			if st.BaseDefine == nil {
				warn("EXT-X-DEFINE IMPORT has no base playlist variables to import: " + imp)
				return
			}
			value, ok := vars.LookupDefine(imp, *st.BaseDefine)
			if !ok {
				warn("EXT-X-DEFINE IMPORT not found in base playlist: " + imp)
				return
			}
			pl.Define.Import[imp] = value
			st.HasVariablesForSubstitution = true

		case hasQueryParam:
			base, err := url.Parse(st.BaseURL)
			if err != nil {
				warn("EXT-X-DEFINE QUERYPARAM: could not parse base URL")
				return
			}
			value := base.Query().Get(qp)
			if value == "" {
				warn("EXT-X-DEFINE QUERYPARAM not found in base URL: " + qp)
				return
			}
			pl.Define.QueryParam[qp] = value
			st.HasVariablesForSubstitution = true
		}
	})
}
