package playlist

// Map is a EXT-X-MAP tag: the initialization segment for the segments
// that follow it, carried forward until replaced.
type Map struct {
	URI         string
	ResolvedURI string
	ByteRange   *ByteRange
}
