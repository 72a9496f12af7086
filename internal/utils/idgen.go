package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// entityIDSpace is the size of the numeric suffix space for generated entity
// IDs ("C0".."C9999" and so on). Matches the on-disk ID format.
const entityIDSpace = 10000

// NewEntityID returns prefix plus a random numeric suffix, retrying until
// taken reports the candidate as free. The caller supplies the collision
// check against its in-memory collection.
func NewEntityID(prefix string, taken func(id string) bool) string {
	for {
		id := fmt.Sprintf("%s%d", prefix, rand.Intn(entityIDSpace))
		if !taken(id) {
			return id
		}
	}
}

// NewTransactionID returns a time-seeded transaction ID combining the unix
// timestamp with a random suffix. Unlike entity IDs it is not checked for
// collisions; two transactions in the same second with the same suffix would
// collide, which the storage contract accepts.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("T%d%d", now.Unix(), rand.Intn(1000))
}
