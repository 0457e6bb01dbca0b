// Package tags implements the per-tag processor registry and dispatcher:
// for each recognized HLS tag it validates required attributes, applies
// variable substitution, coerces values, and mutates the playlist plus
// shared state.
package tags

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/scanner"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

// EmptyProcess handles a tag with no body, e.g. EXT-X-ENDLIST.
type EmptyProcess func(pl *playlist.Playlist, st *state.State)

// ValueProcess handles a tag whose body is a bare value, e.g. EXTINF.
type ValueProcess func(value string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc)

// AttributeProcess handles a tag whose body is an attribute list, e.g.
// EXT-X-STREAM-INF. It runs only after the required-attribute check and
// after variable substitution have both passed.
type AttributeProcess func(attrs map[string]string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc)

// CustomProcess is a caller-supplied handler for a tag this core doesn't
// recognize.
type CustomProcess func(tagKey string, value *string, attrs map[string]string, custom map[string]interface{}, st *state.State)

type attributeTag struct {
	required []string
	process  AttributeProcess
}

// Registry holds the tag-processor maps consulted by Dispatch, in the
// order specified: ignore set, empty tags, value tags, attribute tags,
// then the caller-supplied custom map.
type Registry struct {
	empty     map[string]EmptyProcess
	value     map[string]ValueProcess
	attribute map[string]attributeTag

	Custom map[string]CustomProcess
	Ignore map[string]struct{}

	TransformTagValue      func(tagKey, raw string) (string, bool)
	TransformTagAttributes func(tagKey string, attrs map[string]string) map[string]string
}

// New returns a Registry with every standard HLS tag registered.
func New() *Registry {
	r := &Registry{
		empty:     map[string]EmptyProcess{},
		value:     map[string]ValueProcess{},
		attribute: map[string]attributeTag{},
		Custom:    map[string]CustomProcess{},
		Ignore:    map[string]struct{}{},
	}
	registerEmpty(r)
	registerValue(r)
	registerKey(r)
	registerMap(r)
	registerPart(r)
	registerServerControl(r)
	registerSkip(r)
	registerStart(r)
	registerStream(r)
	registerRendition(r)
	registerDateRange(r)
	registerPreloadHint(r)
	registerRenditionReport(r)
	registerSession(r)
	registerDefine(r)
	return r
}

func (r *Registry) addEmpty(tag string, p EmptyProcess) {
	r.empty[tag] = p
}

func (r *Registry) addValue(tag string, p ValueProcess) {
	r.value[tag] = p
}

func (r *Registry) addAttribute(tag string, required []string, p AttributeProcess) {
	r.attribute[tag] = attributeTag{required: required, process: p}
}

// Dispatch routes one scanner event to the appropriate processor, in the
// order: ignore list, empty tags, value tags, attribute tags, custom tags,
// unsupported-tag warning.
func (r *Registry) Dispatch(ev scanner.Event, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc, debug diag.DebugFunc) {
	if ev.Type != scanner.EventTag {
		return
	}

	if _, ok := r.Ignore[ev.TagKey]; ok {
		warn("skip processing (ignore list): " + ev.TagKey)
		return
	}

	if p, ok := r.empty[ev.TagKey]; ok {
		p(pl, st)
		if debug != nil {
			debug("processed empty tag %s", ev.TagKey)
		}
		return
	}

	if p, ok := r.value[ev.TagKey]; ok {
		raw, hasValue := ev.RawValue, ev.HasValue
		if r.TransformTagValue != nil {
			raw, hasValue = r.TransformTagValue(ev.TagKey, raw)
		}
		if !hasValue {
			warn("skip processing (no tag value): " + ev.TagKey)
			return
		}
		p(raw, pl, st, warn)
		if debug != nil {
			debug("processed value tag %s = %q", ev.TagKey, raw)
		}
		return
	}

	if t, ok := r.attribute[ev.TagKey]; ok {
		attrs := ev.Attrs
		if attrs == nil {
			attrs = map[string]string{}
		}
		if r.TransformTagAttributes != nil {
			attrs = r.TransformTagAttributes(ev.TagKey, attrs)
		}
		for _, req := range t.required {
			if _, ok := attrs[req]; !ok {
				warn("skip processing (missing required attribute " + req + "): " + ev.TagKey)
				return
			}
		}
		if st.HasVariablesForSubstitution {
			attrs = vars.SubstituteAttrs(attrs, pl.Define, warn)
		}
		t.process(attrs, pl, st, warn)
		if debug != nil {
			debug("processed attribute tag %s", ev.TagKey)
		}
		return
	}

	if fn, ok := r.Custom[ev.TagKey]; ok {
		var valuePtr *string
		if ev.HasValue {
			v := ev.RawValue
			valuePtr = &v
		}
		fn(ev.TagKey, valuePtr, ev.Attrs, pl.Custom, st)
		return
	}

	warn("skip processing (unsupported tag): " + ev.TagKey)
}
