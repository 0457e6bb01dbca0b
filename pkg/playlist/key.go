package playlist

// KeyMethod is the encryption method of a EXT-X-KEY / EXT-X-SESSION-KEY tag.
type KeyMethod string

// standard encryption methods.
const (
	KeyMethodNone      KeyMethod = "NONE"
	KeyMethodAES128    KeyMethod = "AES-128"
	KeyMethodSampleAES KeyMethod = "SAMPLE-AES"
)

// Key is a EXT-X-KEY or EXT-X-SESSION-KEY tag.
type Key struct {
	Method KeyMethod

	// URI is required unless Method is KeyMethodNone.
	URI string

	IV                string
	KeyFormat         string
	KeyFormatVersions []int
}
