package playlist

// PreloadHint is a EXT-X-PRELOAD-HINT tag. The byte range it declares may
// be open-ended (a start with no known length yet); OpenEnded distinguishes
// that case from an explicit, bounded range instead of relying on a
// sentinel value.
type PreloadHint struct {
	URI         string
	ResolvedURI string
	Start       uint64
	Length      *uint64
	OpenEnded   bool
}
