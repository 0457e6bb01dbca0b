package playlist

// Variant is a EXT-X-STREAM-INF tag plus the URI line that follows it.
type Variant struct {
	Bandwidth        int
	AverageBandwidth *int
	Codecs           []string
	Resolution       *Resolution
	FrameRate        *float64
	HDCPLevel        string
	Video            string
	Audio            string
	Subtitles        string
	ClosedCaptions   string

	URI         string
	ResolvedURI string
}

// Resolution is a decoded RESOLUTION attribute.
type Resolution struct {
	Width  int
	Height int
}

// IFramePlaylist is a EXT-X-I-FRAME-STREAM-INF tag. Unlike Variant, its
// URI is carried in the attribute list itself, so no following URI line
// finalizes it.
type IFramePlaylist struct {
	Bandwidth        int
	AverageBandwidth *int
	Codecs           []string
	Resolution       *Resolution
	Video            string

	URI         string
	ResolvedURI string
}
