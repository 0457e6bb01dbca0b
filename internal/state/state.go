// Package state holds the transient shared state that per-tag processors
// mutate while a single parse is in progress.
package state

import "github.com/mediaflowhq/hlsparse/pkg/playlist"

// State is the shared mutable working set carried across one parse. It is
// owned by a single Parser for the duration of that parse and must not be
// retained by callbacks beyond the call that received it.
type State struct {
	CurrentSegment *playlist.Segment
	CurrentVariant *playlist.Variant

	CurrentEncryption *playlist.Key
	CurrentMap        *playlist.Map
	CurrentBitrate    *int

	BaseURL  string
	BaseTime float64

	BaseDefine                  *playlist.Define
	HasVariablesForSubstitution bool
	IsMultivariantPlaylist      bool
}

// New returns a State with fresh working segment/variant defaults.
func New(baseURL string, baseTime float64, baseDefine *playlist.Define) *State {
	return &State{
		CurrentSegment: &playlist.Segment{},
		CurrentVariant: &playlist.Variant{},
		BaseURL:        baseURL,
		BaseTime:       baseTime,
		BaseDefine:     baseDefine,
	}
}

// ResetSegment replaces CurrentSegment with a fresh default, called after
// a URI line finalizes the one being built.
func (s *State) ResetSegment() {
	s.CurrentSegment = &playlist.Segment{}
}

// ResetVariant replaces CurrentVariant with a fresh default, called after
// a URI line finalizes the one being built.
func (s *State) ResetVariant() {
	s.CurrentVariant = &playlist.Variant{}
}
