package workload

import (
	"fmt"
	"math/rand/v2"
)

// Item is one unit of work submitted to the network. Cost is the item's
// resource cost in work-package megabytes; Witnesses counts the availability
// witnesses attached to the item and feeds cost accounting only, not core
// load.
type Item struct {
	Seq       uint64
	Profile   Profile
	Cost      float64
	Witnesses int
}

// Generator produces the per-epoch sequence of work items for one scenario.
//
// A Generator owns its sequence-id counter and RNG stream: each Generate
// call advances both exactly once per item, so generation is not restartable
// across epochs. Create a fresh Generator (with a fresh RNG) to replay a run.
type Generator struct {
	scenario   Scenario
	arrivals   ArrivalSampler
	stateless  CostSampler
	stateHeavy CostSampler
	mixWeight  float64 // probability a mixed-scenario item is state-heavy
	rng        *rand.Rand
	nextSeq    uint64
}

// NewGenerator creates a Generator for the given scenario. mixWeight is the
// probability that a mixed-scenario item draws from the state-heavy profile;
// it must lie in [0, 1] (validate at config level; this is a guard).
func NewGenerator(scenario Scenario, arrivals ArrivalSampler, mixWeight float64, rng *rand.Rand) (*Generator, error) {
	if _, err := ParseScenario(string(scenario)); err != nil {
		return nil, err
	}
	if arrivals == nil {
		return nil, fmt.Errorf("nil arrival sampler")
	}
	if mixWeight < 0 || mixWeight > 1 {
		return nil, fmt.Errorf("mixture weight %v outside [0,1]", mixWeight)
	}
	return &Generator{
		scenario:   scenario,
		arrivals:   arrivals,
		stateless:  statelessCostSampler(),
		stateHeavy: stateHeavyCostSampler(),
		mixWeight:  mixWeight,
		rng:        rng,
	}, nil
}

// NewGeneratorWithSamplers is NewGenerator with explicit cost samplers,
// for custom cost distributions.
func NewGeneratorWithSamplers(scenario Scenario, arrivals ArrivalSampler, stateless, stateHeavy CostSampler, mixWeight float64, rng *rand.Rand) (*Generator, error) {
	g, err := NewGenerator(scenario, arrivals, mixWeight, rng)
	if err != nil {
		return nil, err
	}
	if stateless == nil || stateHeavy == nil {
		return nil, fmt.Errorf("nil cost sampler")
	}
	g.stateless = stateless
	g.stateHeavy = stateHeavy
	return g, nil
}

// Generate produces the work items submitted during one epoch, in submission
// order. Sequence ids are unique and monotone across the whole run.
func (g *Generator) Generate(epoch uint32) ([]Item, error) {
	count := g.arrivals.SampleCount(g.rng)
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		profile := g.profileFor()
		sampler := g.stateless
		if profile == ProfileStateHeavy {
			sampler = g.stateHeavy
		}
		cost := sampler.SampleCost(g.rng)
		witnesses := g.witnessesFor(profile)

		seq := g.nextSeq
		g.nextSeq++

		if cost <= 0 {
			return nil, &GenerationError{Epoch: epoch, Seq: seq, Reason: fmt.Sprintf("non-positive resource cost %v", cost)}
		}
		items = append(items, Item{Seq: seq, Profile: profile, Cost: cost, Witnesses: witnesses})
	}
	return items, nil
}

func (g *Generator) profileFor() Profile {
	switch g.scenario {
	case ScenarioStateless:
		return ProfileStateless
	case ScenarioStateHeavy:
		return ProfileStateHeavy
	default: // mixed
		if g.rng.Float64() < g.mixWeight {
			return ProfileStateHeavy
		}
		return ProfileStateless
	}
}

// witnessesFor draws the per-item witness count. Stateless items carry few
// witnesses, state-heavy items an order of magnitude more.
func (g *Generator) witnessesFor(profile Profile) int {
	if profile == ProfileStateHeavy {
		return 1000 + g.rng.IntN(2001) // [1000, 3000]
	}
	return 100 + g.rng.IntN(401) // [100, 500]
}

// NextSeq exposes the sequence counter for tests and diagnostics.
func (g *Generator) NextSeq() uint64 {
	return g.nextSeq
}
