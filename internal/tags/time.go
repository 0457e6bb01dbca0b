package tags

import "time"

// HLS dates are ISO 8601, which allows multiple timezone forms (-0700,
// -07:00); Go's time package only parses the RFC 3339 subset directly, so
// both layouts are tried.
const (
	layoutRFC3339Millis = "2006-01-02T15:04:05.999Z07:00"
	layoutISO8601Millis = "2006-01-02T15:04:05.999Z0700"
)

func parseTimeMillis(v string) (int64, error) {
	t, err := time.Parse(layoutRFC3339Millis, v)
	if err != nil {
		t, err = time.Parse(layoutISO8601Millis, v)
		if err != nil {
			return 0, err
		}
	}
	return t.UnixNano() / int64(time.Millisecond), nil
}
