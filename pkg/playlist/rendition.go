package playlist

// RenditionType is the TYPE attribute of a EXT-X-MEDIA tag.
type RenditionType string

// standard rendition types.
const (
	RenditionTypeAudio          RenditionType = "AUDIO"
	RenditionTypeVideo          RenditionType = "VIDEO"
	RenditionTypeSubtitles      RenditionType = "SUBTITLES"
	RenditionTypeClosedCaptions RenditionType = "CLOSED-CAPTIONS"
)

// Rendition is a EXT-X-MEDIA tag: an alternate audio/video/subtitle/
// closed-captions track, grouped by GROUP-ID.
type Rendition struct {
	Type        RenditionType
	GroupID     string
	Name        string
	Language    string
	AssocLang   string
	URI         string
	ResolvedURI string
	InstreamID  string
	Default     bool
	Autoselect  bool
	Forced      bool
	Channels    string
}

// RenditionGroups collects renditions by type and then by GROUP-ID.
type RenditionGroups struct {
	Audio          map[string][]*Rendition
	Video          map[string][]*Rendition
	Subtitles      map[string][]*Rendition
	ClosedCaptions map[string][]*Rendition
}

// NewRenditionGroups returns a RenditionGroups with every map initialized.
func NewRenditionGroups() RenditionGroups {
	return RenditionGroups{
		Audio:          map[string][]*Rendition{},
		Video:          map[string][]*Rendition{},
		Subtitles:      map[string][]*Rendition{},
		ClosedCaptions: map[string][]*Rendition{},
	}
}

// groupFor returns the map of GROUP-ID to renditions for a given type.
func (g *RenditionGroups) groupFor(t RenditionType) map[string][]*Rendition {
	switch t {
	case RenditionTypeAudio:
		return g.Audio
	case RenditionTypeVideo:
		return g.Video
	case RenditionTypeSubtitles:
		return g.Subtitles
	case RenditionTypeClosedCaptions:
		return g.ClosedCaptions
	default:
		return nil
	}
}

// Add appends a rendition to its type/GROUP-ID bucket, creating the
// bucket if it doesn't exist yet.
func (g *RenditionGroups) Add(r *Rendition) {
	m := g.groupFor(r.Type)
	if m == nil {
		return
	}
	m[r.GroupID] = append(m[r.GroupID], r)
}
