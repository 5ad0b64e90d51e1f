package sim

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// EntropySource produces the reproducible, epoch-indexed randomness that
// drives core assignment. The draw for an epoch depends only on (seed,
// epoch), never on call order, so re-querying the same epoch is idempotent
// and two sources with the same seed agree on every epoch.
//
// Derivation: SHA3-256(seed_le64 || epoch_le32), truncated to the first 8
// bytes. One fresh draw per epoch models the on-chain entropy accumulator
// rotating at epoch boundaries.
type EntropySource struct {
	seed int64
}

// NewEntropySource creates an EntropySource for the given seed.
func NewEntropySource(seed int64) *EntropySource {
	return &EntropySource{seed: seed}
}

// Draw returns the entropy value for an epoch.
func (e *EntropySource) Draw(epoch uint32) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(e.seed))
	binary.LittleEndian.PutUint32(buf[8:], epoch)
	sum := sha3.Sum256(buf[:])
	return binary.LittleEndian.Uint64(sum[:8])
}

// Seed returns the seed this source was created with.
func (e *EntropySource) Seed() int64 {
	return e.seed
}
