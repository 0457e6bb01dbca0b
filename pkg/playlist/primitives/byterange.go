package primitives

import (
	"strconv"
	"strings"
)

// RawByteRange is the wire form of a BYTERANGE attribute or EXT-X-BYTERANGE
// value: length, optionally followed by "@offset".
type RawByteRange struct {
	Length uint64
	Offset *uint64
}

// Unmarshal decodes a byte range in "length[@offset]" form.
func (b *RawByteRange) Unmarshal(v string) error {
	if str1, str2, found := strings.Cut(v, "@"); found {
		var err error
		b.Length, err = strconv.ParseUint(str1, 10, 64)
		if err != nil {
			return err
		}

		offset, err := strconv.ParseUint(str2, 10, 64)
		if err != nil {
			return err
		}

		b.Offset = &offset

		return nil
	}

	var err error
	b.Length, err = strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}

	return nil
}
