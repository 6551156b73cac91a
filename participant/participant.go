// Package participant implements the voting entities of the simulation and
// the population builder that assembles them.
package participant

import (
	"fmt"
	"math/rand"

	wr "github.com/mroth/weightedrand"

	"github.com/relab/quorumsim"
)

// DelayRange is a half-open interval [Min, Max) of synthetic response times,
// in time units, that a participant's delay is drawn from uniformly.
type DelayRange struct {
	Min float64
	Max float64
}

// Delay ranges for the two behavioral classes. The faulty range must not dip
// below the honest range's upper bound: faulty participants are slower, and
// the throughput comparison between the protocols depends on that.
var (
	HonestDelay = DelayRange{Min: 0.01, Max: 0.05}
	FaultyDelay = DelayRange{Min: 0.05, Max: 0.2}
)

// sample draws a delay uniformly from the range.
func (r DelayRange) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// coin picks uniformly between approval and rejection. Equal weights make the
// chooser a fair coin; PickSource keeps the draw on the caller's rand source.
var coin = newCoin()

func newCoin() *wr.Chooser {
	c, err := wr.NewChooser(
		wr.Choice{Item: true, Weight: 1},
		wr.Choice{Item: false, Weight: 1},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create chooser: %v", err))
	}
	return c
}

// Member is a single voting entity. Participant is the only implementation
// used by the simulation; tests substitute their own.
type Member interface {
	// Classification returns the behavioral class assigned at construction.
	Classification() quorumsim.Classification
	// Vote produces this member's vote on the given request, drawing any
	// randomness from rng. Each call is independent; nothing is cached.
	Vote(rng *rand.Rand, req quorumsim.Request) quorumsim.Vote
}

// Participant is a voting entity with a fixed behavioral classification.
//
// Honest participants always approve and draw their delay from HonestDelay.
// Faulty participants flip a fair coin and draw their delay from FaultyDelay.
type Participant struct {
	class quorumsim.Classification
}

// New returns a new participant with the given classification.
func New(class quorumsim.Classification) *Participant {
	return &Participant{class: class}
}

// Classification returns the participant's behavioral class.
func (p *Participant) Classification() quorumsim.Classification {
	return p.class
}

// Vote returns the participant's vote on the request along with its synthetic
// response delay. It has no side effects and keeps no state between calls.
func (p *Participant) Vote(rng *rand.Rand, _ quorumsim.Request) quorumsim.Vote {
	if p.class == quorumsim.Faulty {
		return quorumsim.Vote{
			Approve: coin.PickSource(rng).(bool),
			Delay:   FaultyDelay.sample(rng),
		}
	}
	return quorumsim.Vote{
		Approve: true,
		Delay:   HonestDelay.sample(rng),
	}
}
