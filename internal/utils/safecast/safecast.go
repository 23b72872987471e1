// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// IntToUint32 safely converts an int to uint32 using cast and checks for overflow
func IntToUint32(value int) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", value)
	}

	return cast.ToUint32E(value)
}
