package primitives

import (
	"strconv"
)

// SecondsUnmarshal decodes a decimal-floating-point number of seconds.
func SecondsUnmarshal(val string) (float64, error) {
	return strconv.ParseFloat(val, 64)
}
