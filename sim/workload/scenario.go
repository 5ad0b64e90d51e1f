package workload

import "fmt"

// Scenario names a workload profile that determines the resource-cost
// distribution of generated items.
type Scenario string

const (
	// ScenarioStateless models light, mostly stateless transactions: small
	// work-packages drawn from a narrow low-value distribution.
	ScenarioStateless Scenario = "stateless"

	// ScenarioStateHeavy models state-changing operations: large
	// work-packages drawn from a wide high-value distribution.
	ScenarioStateHeavy Scenario = "state-heavy"

	// ScenarioMixed blends the two profiles; each item independently picks
	// one according to the configured mixture weight.
	ScenarioMixed Scenario = "mixed"
)

// Scenarios lists all known scenarios in comparison order.
var Scenarios = []Scenario{ScenarioStateless, ScenarioStateHeavy, ScenarioMixed}

// ParseScenario validates a scenario name from configuration or CLI input.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioStateless, ScenarioStateHeavy, ScenarioMixed:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("unknown scenario %q (want stateless, state-heavy or mixed)", s)
}
