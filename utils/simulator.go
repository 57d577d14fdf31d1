package utils

import (
	"math/rand"
	"time"
)

// Success probabilities for the probabilistic processing mode.
const (
	upiSuccessRate  = 0.90
	cardSuccessRate = 0.95
)

// Simulator decides whether a payment attempt settles successfully after a
// simulated processing delay. It has no side effects; the caller persists
// the outcome.
type Simulator struct {
	// TestMode pins the delay and outcome for deterministic tests.
	TestMode    bool
	TestSuccess bool
	TestDelay   time.Duration
}

// NewSimulator builds a simulator in probabilistic mode.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// NewTestSimulator builds a simulator with a fixed delay and outcome.
func NewTestSimulator(success bool, delay time.Duration) *Simulator {
	return &Simulator{
		TestMode:    true,
		TestSuccess: success,
		TestDelay:   delay,
	}
}

// Process blocks for the simulated settlement delay and returns whether the
// attempt succeeded. method is "upi" or "card". Safe for concurrent use
// across request handlers.
func (s *Simulator) Process(method string) bool {
	if s.TestMode {
		time.Sleep(s.TestDelay)
		return s.TestSuccess
	}

	// Uniform delay in [5s, 10s]. The package-level generator is mutex
	// guarded, unlike a shared rand.Rand.
	delay := 5000 + rand.Intn(5001)
	time.Sleep(time.Duration(delay) * time.Millisecond)

	return decideOutcome(method)
}

// decideOutcome draws the Bernoulli settlement result for a method.
func decideOutcome(method string) bool {
	rate := cardSuccessRate
	if method == "upi" {
		rate = upiSuccessRate
	}
	return rand.Float64() <= rate
}
