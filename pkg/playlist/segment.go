package playlist

// ByteRange is an inclusive byte range, as stored on a Segment or
// PartialSegment (unlike the wire form, start and end are both resolved).
type ByteRange struct {
	Start uint64
	End   uint64
}

// PartialSegment is an EXT-X-PART tag, a low-latency sub-chunk of a segment.
type PartialSegment struct {
	URI         string
	ResolvedURI string
	Duration    float64
	Independent bool
	ByteRange   *ByteRange
	Gap         bool
}

// Segment is one entry of a media playlist.
type Segment struct {
	URI         string
	ResolvedURI string
	Duration    float64
	Title       string
	ByteRange   *ByteRange
	Bitrate     *int

	IsDiscontinuity bool
	IsGap           bool

	Encryption *Key
	Map        *Map

	Parts []*PartialSegment

	ProgramDateTimeStart *int64 // milliseconds since epoch
	ProgramDateTimeEnd   *int64

	MediaSequence         int
	DiscontinuitySequence int
	StartTime             float64
	EndTime               float64
}
