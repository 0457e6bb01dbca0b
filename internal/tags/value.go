package tags

import (
	"strconv"
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
	"github.com/mediaflowhq/hlsparse/pkg/playlist/primitives"

	"github.com/mediaflowhq/hlsparse/internal/state"
)

func registerValue(r *Registry) {
	r.addValue("EXT-X-VERSION", func(v string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-VERSION value: " + v)
			return
		}
		pl.Version = n
	})

	r.addValue("EXT-X-TARGETDURATION", func(v string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-TARGETDURATION value: " + v)
			return
		}
		pl.TargetDuration = n
	})

	r.addValue("EXT-X-MEDIA-SEQUENCE", func(v string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-MEDIA-SEQUENCE value: " + v)
			return
		}
		pl.MediaSequence = n
	})

	r.addValue("EXT-X-DISCONTINUITY-SEQUENCE", func(v string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-DISCONTINUITY-SEQUENCE value: " + v)
			return
		}
		pl.DiscontinuitySequence = n
	})

	r.addValue("EXT-X-PLAYLIST-TYPE", func(v string, pl *playlist.Playlist, _ *state.State, warn diag.WarnFunc) {
		t := playlist.PlaylistType(strings.TrimSpace(v))
		if t != playlist.PlaylistTypeVOD && t != playlist.PlaylistTypeEvent {
			warn("unsupported EXT-X-PLAYLIST-TYPE value: " + v)
			return
		}
		pl.PlaylistType = &t
	})

	r.addValue("EXT-X-BITRATE", func(v string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-BITRATE value: " + v)
			return
		}
		st.CurrentBitrate = &n
	})

	r.addValue("EXT-X-PROGRAM-DATE-TIME", func(v string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		ms, err := parseTimeMillis(strings.TrimSpace(v))
		if err != nil {
			warn("unparsable EXT-X-PROGRAM-DATE-TIME value: " + v)
			return
		}
		st.CurrentSegment.ProgramDateTimeStart = &ms
	})

	r.addValue("EXTINF", func(v string, _ *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		parts := strings.SplitN(v, ",", 2)

		d, err := primitives.SecondsUnmarshal(strings.TrimSpace(parts[0]))
		if err != nil {
			warn("unparsable EXTINF duration: " + v)
			return
		}
		st.CurrentSegment.Duration = d

		if len(parts) == 2 {
			st.CurrentSegment.Title = strings.TrimSpace(parts[1])
		}
	})

	r.addValue("EXT-X-BYTERANGE", func(v string, pl *playlist.Playlist, st *state.State, warn diag.WarnFunc) {
		var raw primitives.RawByteRange
		if err := raw.Unmarshal(strings.TrimSpace(v)); err != nil {
			warn("unparsable EXT-X-BYTERANGE value: " + v)
			return
		}

		var offset uint64
		switch {
		case raw.Offset != nil:
			offset = *raw.Offset
		case len(pl.Segments) > 0 && pl.Segments[len(pl.Segments)-1].ByteRange != nil:
			offset = pl.Segments[len(pl.Segments)-1].ByteRange.End + 1
		}

		st.CurrentSegment.ByteRange = &playlist.ByteRange{
			Start: offset,
			End:   offset + raw.Length - 1,
		}
	})
}
