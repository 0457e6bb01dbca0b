// Package playlist contains the data model produced by the HLS parsing
// core: a single mutable Playlist aggregate covering both multivariant
// (master) and media playlists.
package playlist

// PlaylistType is an EXT-X-PLAYLIST-TYPE value.
type PlaylistType string

// standard playlist types.
const (
	PlaylistTypeVOD   PlaylistType = "VOD"
	PlaylistTypeEvent PlaylistType = "EVENT"
)

// Start is an EXT-X-START tag.
type Start struct {
	TimeOffset float64
	Precise    bool
}

// PartInf is an EXT-X-PART-INF tag.
type PartInf struct {
	PartTarget float64
}

// ServerControl is an EXT-X-SERVER-CONTROL tag.
type ServerControl struct {
	CanSkipUntil     *float64
	CanSkipDateRanges bool
	CanBlockReload   bool
	HoldBack         *float64
	PartHoldBack     *float64
}

// Skip is an EXT-X-SKIP tag.
type Skip struct {
	SkippedSegments         int
	RecentlyRemovedDateRanges []string
}

// Define holds the three EXT-X-DEFINE variable scopes.
type Define struct {
	Name       map[string]string
	Import     map[string]string
	QueryParam map[string]string
}

// NewDefine returns a Define with initialized maps.
func NewDefine() Define {
	return Define{
		Name:       map[string]string{},
		Import:     map[string]string{},
		QueryParam: map[string]string{},
	}
}

// SessionData is an EXT-X-SESSION-DATA tag.
type SessionData struct {
	DataID   string
	Value    string
	URI      string
	Language string
}

// ContentSteering is an EXT-X-CONTENT-STEERING tag.
type ContentSteering struct {
	ServerURI string
	PathwayID string
}

// Playlist is the mutable aggregate populated by the parsing core. It is
// either a media playlist (Segments populated) or a multivariant playlist
// (Variants populated), never meaningfully both.
type Playlist struct {
	// general
	M3U                 bool
	Version             int
	IndependentSegments bool
	EndList             bool
	IFramesOnly         bool
	PlaylistType        *PlaylistType
	TargetDuration      int
	MediaSequence       int
	DiscontinuitySequence int
	Start               *Start

	// low-latency
	PartInf          *PartInf
	ServerControl    *ServerControl
	Skip             *Skip
	PreloadHints     PreloadHints
	RenditionReports []*RenditionReport

	// variables
	Define Define

	// encryption / session
	SessionKeys     []*Key
	SessionData     map[string]*SessionData
	ContentSteering *ContentSteering

	// media playlist
	Segments   []*Segment
	DateRanges []*DateRange

	// multivariant
	Variants        []*Variant
	IFramePlaylists []*IFramePlaylist
	RenditionGroups RenditionGroups

	// custom, populated only by caller-supplied custom-tag handlers
	Custom map[string]interface{}
}

// PreloadHints holds the two possible EXT-X-PRELOAD-HINT entries.
type PreloadHints struct {
	Part *PreloadHint
	Map  *PreloadHint
}

// New returns a Playlist with every collection initialized empty.
func New() *Playlist {
	return &Playlist{
		Define:          NewDefine(),
		SessionData:     map[string]*SessionData{},
		RenditionGroups: NewRenditionGroups(),
		Custom:          map[string]interface{}{},
	}
}

// IsMultivariant reports whether the playlist looks like a multivariant
// playlist based on what has been populated so far.
func (p *Playlist) IsMultivariant() bool {
	return len(p.Variants) > 0 || len(p.IFramePlaylists) > 0
}
