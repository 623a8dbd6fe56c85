package domain

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// NewID returns a low-collision identifier built from the current time in
// base36 plus base36 randomness. Ids are only ever compared for equality,
// so probabilistic uniqueness is sufficient; nothing orders by id.
func NewID() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 36)
	random := strconv.FormatUint(rand.Uint64(), 36)
	return millis + random
}
