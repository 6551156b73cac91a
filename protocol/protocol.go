// Package protocol implements the quorum decision algorithms being compared:
// a baseline that polls the entire population, and a trust-filtered variant
// that excludes faulty participants before voting.
package protocol

import (
	"fmt"
	"math/rand"

	"github.com/relab/quorumsim"
	"github.com/relab/quorumsim/participant"
)

// Protocol decides consensus rounds over a fixed participant set bound at
// construction time.
type Protocol interface {
	// Name returns the name of the decision algorithm.
	Name() string
	// Decide collects votes for the given request and returns the consensus
	// outcome together with the summed synthetic delay of all votes
	// collected. Every eligible participant is re-polled on each call.
	Decide(req quorumsim.Request) (decision bool, elapsed float64)
}

// New returns a new protocol with the given name, operating over the given
// population and drawing randomness from rng.
func New(name string, rng *rand.Rand, pop participant.Population) (Protocol, error) {
	switch name {
	case NameBaseline:
		return NewBaseline(rng, pop), nil
	case NameTrustFiltered:
		return NewTrustFiltered(rng, pop), nil
	default:
		return nil, fmt.Errorf("unknown protocol: %q", name)
	}
}

// pollAll collects one vote from every member and tallies approvals and total
// delay. Everyone is polled even after the outcome is settled: cutting the
// poll short would change the elapsed time and thus the throughput figures.
func pollAll(rng *rand.Rand, members participant.Population, req quorumsim.Request) (approvals int, elapsed float64) {
	for _, m := range members {
		v := m.Vote(rng, req)
		if v.Approve {
			approvals++
		}
		elapsed += v.Delay
	}
	return approvals, elapsed
}
