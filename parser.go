/*
Package hlsparse implements the core of a streaming parser for HLS
playlists: a character-at-a-time lexical scanner, a tag-processor
registry, and a segment/variant assembler that together turn a raw
playlist byte stream — delivered whole or in arbitrarily-chunked
pieces — into a *playlist.Playlist.

Network fetching, playback, and serialization back to text are outside
this package's scope; callers drive it with bytes they already have.
*/
package hlsparse

import (
	"github.com/mediaflowhq/hlsparse/internal/assemble"
	"github.com/mediaflowhq/hlsparse/internal/diag"
	"github.com/mediaflowhq/hlsparse/internal/scanner"
	"github.com/mediaflowhq/hlsparse/internal/state"
	"github.com/mediaflowhq/hlsparse/internal/tags"
	"github.com/mediaflowhq/hlsparse/pkg/playlist"
)

// WarnFunc receives one human-readable warning per recovered parse
// problem. The parser never returns an error for content problems; this
// is the only channel for them.
type WarnFunc func(message string)

// DebugFunc receives optional tracing: one call per dispatched tag and
// one per finalized segment/variant.
type DebugFunc func(format string, args ...interface{})

// CustomTagFunc handles a tag this core doesn't recognize natively.
// value is nil for a tag with no body; custom is playlist.Playlist.Custom,
// mutable in place.
type CustomTagFunc func(tagKey string, value *string, attrs map[string]string, custom map[string]interface{})

// TransformTagValueFunc rewrites a value tag's raw body before dispatch.
// Returning ok == false is treated as a missing value.
type TransformTagValueFunc func(tagKey, raw string) (value string, ok bool)

// TransformTagAttributesFunc rewrites an attribute tag's parsed
// attributes before dispatch.
type TransformTagAttributesFunc func(tagKey string, attrs map[string]string) map[string]string

// ParserOptions configures a Parser instance. All fields are optional.
type ParserOptions struct {
	WarnFunc  WarnFunc
	DebugFunc DebugFunc

	CustomTagMap map[string]CustomTagFunc
	IgnoreTags   []string

	TransformTagValue      TransformTagValueFunc
	TransformTagAttributes TransformTagAttributesFunc
}

// ParseOptions configures a single parse (ParseFull call, or the Push/Done
// pair of one progressive parse).
type ParseOptions struct {
	// BaseURL is used to resolve relative URIs and to look up
	// EXT-X-DEFINE QUERYPARAM variables.
	BaseURL string

	// BaseDefine is a caller-supplied variable scope consulted by
	// EXT-X-DEFINE IMPORT.
	BaseDefine *playlist.Define

	// BaseTime is added to the first segment's startTime. Defaults to 0.
	BaseTime float64
}

// Parser drives the scanner/registry/assembler pipeline, in either
// full or progressive mode. A Parser instance is not safe for
// concurrent use; independent instances may run in parallel.
type Parser struct {
	opts     ParserOptions
	registry *tags.Registry

	sc *scanner.Scanner
	pl *playlist.Playlist
	st *state.State
}

// New returns a Parser configured with opts.
func New(opts ParserOptions) *Parser {
	r := tags.New()

	for _, t := range opts.IgnoreTags {
		r.Ignore[t] = struct{}{}
	}
	if opts.TransformTagValue != nil {
		r.TransformTagValue = func(tagKey, raw string) (string, bool) {
			return opts.TransformTagValue(tagKey, raw)
		}
	}
	if opts.TransformTagAttributes != nil {
		r.TransformTagAttributes = opts.TransformTagAttributes
	}
	for tagKey, fn := range opts.CustomTagMap {
		fn := fn
		r.Custom[tagKey] = func(tagKey string, value *string, attrs map[string]string, custom map[string]interface{}, _ *state.State) {
			fn(tagKey, value, attrs, custom)
		}
	}

	return &Parser{opts: opts, registry: r}
}

func (p *Parser) warn(message string) {
	if p.opts.WarnFunc != nil {
		p.opts.WarnFunc(message)
	}
}

func (p *Parser) debug(format string, args ...interface{}) {
	if p.opts.DebugFunc != nil {
		p.opts.DebugFunc(format, args...)
	}
}

func (p *Parser) ensureStarted(opts ParseOptions) {
	if p.sc != nil {
		return
	}
	p.sc = scanner.New()
	p.pl = playlist.New()
	p.st = state.New(opts.BaseURL, opts.BaseTime, opts.BaseDefine)
}

func (p *Parser) handle(ev scanner.Event) {
	switch ev.Type {
	case scanner.EventTag:
		p.registry.Dispatch(ev, p.pl, p.st, diag.WarnFunc(p.warn), diag.DebugFunc(p.debug))
	case scanner.EventURI:
		assemble.OnURI(ev.URI, p.pl, p.st, diag.WarnFunc(p.warn))
		p.debug("finalized uri %s", ev.URI)
	}
}

func (p *Parser) finish() *playlist.Playlist {
	p.sc.Close(p.handle)
	pl := p.pl
	p.sc = nil
	p.pl = nil
	p.st = nil
	return pl
}

// ParseFull consumes data in one shot and returns the resulting
// playlist. The Parser is left reset and reusable for another parse.
func (p *Parser) ParseFull(data []byte, opts ParseOptions) (*playlist.Playlist, error) {
	p.ensureStarted(opts)
	p.sc.FeedBytes(data, p.handle)
	return p.finish(), nil
}

// Push feeds one chunk of a progressive parse. The underlying scanner is
// created lazily on the first call and retained across calls; a chunk
// boundary landing mid-line requires no special handling. Calling Push
// again after Done starts a new parse.
func (p *Parser) Push(chunk []byte, opts ParseOptions) error {
	p.ensureStarted(opts)
	p.sc.FeedBytes(chunk, p.handle)
	return nil
}

// Done finalizes a progressive parse started by one or more Push calls
// and returns the resulting playlist. The Parser is left reset and
// reusable for another parse.
func (p *Parser) Done() (*playlist.Playlist, error) {
	if p.sc == nil {
		return playlist.New(), nil
	}
	return p.finish(), nil
}
