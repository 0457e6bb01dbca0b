// Package assemble folds the linear uri-recognized event stream into
// ordered segments or variant streams, deriving media-sequence numbers,
// discontinuity-sequence numbers, start/end times, and program-date-time
// extrapolation.
package assemble

import (
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/vars"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

// OnURI handles one uri-recognized event: variable substitution, URI
// resolution, and finalizing either the current variant (multivariant
// playlist) or the current segment (media playlist).
func OnURI(uri string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
	if st.HasVariablesForSubstitution {
		uri = vars.Substitute(uri, pl.Define, warn)
	}

	resolvedURI, ok := vars.Resolve(uri, st.BaseURL)
	if !ok {
		warn("could not resolve URI: " + uri)
		resolvedURI = uri
	}

	if st.IsMultivariantPlaylist {
		finalizeVariant(uri, resolvedURI, pl, st)
		return
	}

	finalizeSegment(uri, resolvedURI, pl, st, warn)
}

func finalizeVariant(uri, resolvedURI string, pl *playlist.Playlist, st *state.State) {
	v := st.CurrentVariant
	v.URI = uri
	v.ResolvedURI = resolvedURI
	pl.Variants = append(pl.Variants, v)
	st.ResetVariant()
}

func finalizeSegment(uri, resolvedURI string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
	seg := st.CurrentSegment

	if pl.TargetDuration > 0 && seg.Duration > float64(pl.TargetDuration) {
		warn("segment duration exceeds target duration")
	}

	seg.Encryption = st.CurrentEncryption
	seg.Map = st.CurrentMap
	seg.URI = uri
	seg.ResolvedURI = resolvedURI

	var prev *playlist.Segment
	if n := len(pl.Segments); n > 0 {
		prev = pl.Segments[n-1]
	}

	switch {
	case prev != nil:
		seg.MediaSequence = prev.MediaSequence + 1
		seg.StartTime = prev.EndTime
		seg.DiscontinuitySequence = prev.DiscontinuitySequence
		if seg.IsDiscontinuity {
			seg.DiscontinuitySequence++
		}
	default:
		seg.StartTime = st.BaseTime
		seg.MediaSequence = pl.MediaSequence
		seg.DiscontinuitySequence = pl.DiscontinuitySequence
	}

	seg.EndTime = seg.StartTime + seg.Duration

	if st.CurrentBitrate != nil && seg.ByteRange == nil {
		seg.Bitrate = st.CurrentBitrate
	}

	switch {
	case seg.ProgramDateTimeStart != nil:
		end := *seg.ProgramDateTimeStart + int64(seg.Duration*1000)
		seg.ProgramDateTimeEnd = &end
	case prev != nil && prev.ProgramDateTimeStart != nil:
		start := *prev.ProgramDateTimeStart + int64(prev.Duration*1000)
		seg.ProgramDateTimeStart = &start
		end := start + int64(seg.Duration*1000)
		seg.ProgramDateTimeEnd = &end
	}

	pl.Segments = append(pl.Segments, seg)
	st.ResetSegment()
}
