// Package scanner implements the character-at-a-time state machine that
// turns a raw HLS playlist byte stream into tag-recognized and
// uri-recognized structural events.
package scanner

import (
	"strings"

	"github.com/mediaflowhq/hlsparse/internal/attrlex"
)

// EventType identifies the kind of structural event emitted by the scanner.
type EventType int

// event kinds.
const (
	EventTag EventType = iota
	EventURI
)

// Event is one structural event emitted by Feed or Close.
type Event struct {
	Type EventType

	// valid when Type == EventTag
	TagKey    string
	HasValue  bool
	RawValue  string
	Attrs     map[string]string
	IsBare    bool

	// valid when Type == EventURI
	URI string
}

type lineState int

const (
	stateLineStart lineState = iota
	stateTagStartMaybe
	stateTagName
	stateComment
	stateTagBody
	stateURI
)

// Scanner is a re-entrant, single-byte-at-a-time line scanner. It retains
// its accumulator across Feed calls, so a chunk boundary landing mid-line
// requires no special handling: the caller simply keeps calling Feed.
type Scanner struct {
	state   lineState
	tagName strings.Builder
	body    strings.Builder
	line    strings.Builder
}

// New returns a Scanner positioned at the start of a line.
func New() *Scanner {
	return &Scanner{}
}

// trimCR strips a single trailing '\r', left behind by a CRLF line ending.
func trimCR(v string) string {
	if len(v) != 0 && v[len(v)-1] == '\r' {
		return v[:len(v)-1]
	}
	return v
}

// Feed consumes one byte and returns the event it completed, if any.
func (s *Scanner) Feed(c byte) (Event, bool) {
	switch s.state {
	case stateLineStart:
		switch {
		case c == '#':
			s.state = stateTagStartMaybe
		case c == '\n':
			// blank line, nothing to emit
		case c == ' ' || c == '\t' || c == '\r':
			// whitespace-only prefix, stay at line start
		default:
			s.state = stateURI
			s.line.Reset()
			s.line.WriteByte(c)
		}

	case stateTagStartMaybe:
		switch {
		case c == 'E':
			s.state = stateTagName
			s.tagName.Reset()
			s.tagName.WriteByte(c)
		case c == '\n':
			s.state = stateLineStart
		default:
			s.state = stateComment
		}

	case stateComment:
		if c == '\n' {
			s.state = stateLineStart
		}

	case stateTagName:
		switch c {
		case ':':
			s.state = stateTagBody
			s.body.Reset()
		case '\n':
			s.state = stateLineStart
			key := trimCR(s.tagName.String())
			s.tagName.Reset()
			return Event{Type: EventTag, TagKey: key}, true
		default:
			s.tagName.WriteByte(c)
		}

	case stateTagBody:
		if c == '\n' {
			s.state = stateLineStart
			key := trimCR(s.tagName.String())
			raw := trimCR(s.body.String())
			s.tagName.Reset()
			s.body.Reset()
			attrs, isBare := attrlex.Lex(raw)
			return Event{
				Type:     EventTag,
				TagKey:   key,
				HasValue: true,
				RawValue: raw,
				Attrs:    attrs,
				IsBare:   isBare,
			}, true
		}
		s.body.WriteByte(c)

	case stateURI:
		if c == '\n' {
			s.state = stateLineStart
			uri := strings.TrimSpace(s.line.String())
			s.line.Reset()
			if uri == "" {
				return Event{}, false
			}
			return Event{Type: EventURI, URI: uri}, true
		}
		s.line.WriteByte(c)
	}

	return Event{}, false
}

// FeedBytes feeds an entire chunk, invoking emit for every event produced.
func (s *Scanner) FeedBytes(buf []byte, emit func(Event)) {
	for _, c := range buf {
		if ev, ok := s.Feed(c); ok {
			emit(ev)
		}
	}
}

// Close injects the synthetic trailing newline required to flush a final
// line that was never itself terminated by '\n'. It is a no-op if the
// scanner is already positioned at the start of a line.
func (s *Scanner) Close(emit func(Event)) {
	if s.state == stateLineStart {
		return
	}
	if ev, ok := s.Feed('\n'); ok {
		emit(ev)
	}
}
