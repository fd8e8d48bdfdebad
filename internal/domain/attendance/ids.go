package attendance

import (
	"math/rand/v2"
	"strconv"
)

// maxIDAttempts bounds the search for an unused id.
const maxIDAttempts = 32

// RandomID returns a 5-digit numeric id in [10000, 99999].
func RandomID() string {
	return strconv.Itoa(10000 + rand.IntN(90000))
}
