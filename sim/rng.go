package sim

import (
	"hash/fnv"
	"math/rand/v2"
)

// RNG subsystem names.
const (
	// SubsystemWorkload drives workload generation (arrival counts, cost
	// draws, mixture selection).
	SubsystemWorkload = "workload"

	// SubsystemFinality drives block-delay jitter draws.
	SubsystemFinality = "finality"
)

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
// Each simulation run owns its own PartitionedRNG, so parallel runs cannot
// interfere through a shared process-wide generator.
//
// Derivation: subsystemSeed = masterSeed XOR fnv1a64(subsystemName). The
// XOR keeps derivation order-independent; requesting subsystems in a
// different order yields the same streams.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	masterSeed int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derived := uint64(p.masterSeed) ^ fnv1a64(name)
	rng := rand.New(rand.NewPCG(derived, uint64(p.masterSeed)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.masterSeed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
