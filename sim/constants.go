package sim

// Protocol-level defaults, taken from the JAM Graypaper parameterization.
const (
	// DefaultCoreCount is the number of cores in the reference core set (C).
	DefaultCoreCount = 341

	// DefaultSlotPeriod is the slot period in seconds (P).
	DefaultSlotPeriod = 6.0

	// DefaultSlotsPerEpoch is the number of timeslots in each epoch (E).
	// 600 slots of 6s each give a one-hour epoch.
	DefaultSlotsPerEpoch = 600

	// ExtrinsicsPerPackage is the number of extrinsics carried by one
	// work-package (T).
	ExtrinsicsPerPackage = 128

	// DefaultFinalityDelaySlots is the typical finality-gadget confirmation
	// delay, in slots. GRANDPA finality lags the head by ~1-2 blocks and a
	// block is one slot.
	DefaultFinalityDelaySlots = 2

	// DefaultBottleneckThreshold flags a core as contended when its epoch
	// load exceeds this multiple of the mean epoch load.
	DefaultBottleneckThreshold = 2.0
)

// Placeholder prices for the pending JAM economy, in USD.
const (
	// GammaA is the cost per workload (work-package).
	GammaA = 0.001

	// GammaZ is the cost per ticket. A ticket covers ExtrinsicsPerPackage
	// extrinsics.
	GammaZ = 0.0005
)
