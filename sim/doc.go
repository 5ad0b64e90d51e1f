// Package sim models how computational workloads distribute across the
// fixed-size core set of a sharded validation network, and how long finality
// of a processed workload takes under a fixed-delay finality-gadget model.
// It is a pure, single-goroutine computation over synthetic data: no I/O, no
// network, no rendering — reporting lives in sim/report.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - entropy.go: epoch-indexed, reproducible entropy (SHA3 over seed+epoch)
//   - assign.go: item→core hashing, per-core load accumulation, bottleneck flags
//   - runner.go: the epoch loop and result aggregation
//
// # Determinism
//
// A run is fully determined by its Config. Entropy is a pure function of
// (seed, epoch); all other randomness flows through a PartitionedRNG whose
// subsystem streams derive from the same seed. Re-running an identical
// Config reproduces an identical ScenarioResult; parallel runs each own
// their entropy source and core state.
//
// # Extension points
//
// Small interfaces mark where behavior is swappable:
//   - workload.CostSampler: resource-cost distribution per profile
//   - workload.ArrivalSampler: per-epoch item volume
//   - DelaySampler: the finality block-delay model
package sim
