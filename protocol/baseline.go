package protocol

import (
	"math/rand"

	"github.com/relab/quorumsim"
	"github.com/relab/quorumsim/participant"
)

// NameBaseline identifies the baseline protocol.
const NameBaseline = "baseline"

// Baseline is the unfiltered quorum protocol. Every member of the population,
// honest and faulty alike, is polled on each decision, and the request is
// approved iff the approvals reach the two-thirds threshold over the whole
// population size.
type Baseline struct {
	rng *rand.Rand
	pop participant.Population
}

// NewBaseline returns a baseline protocol over the given population.
func NewBaseline(rng *rand.Rand, pop participant.Population) *Baseline {
	return &Baseline{rng: rng, pop: pop}
}

// Name returns the name of the decision algorithm.
func (b *Baseline) Name() string { return NameBaseline }

// Decide polls the whole population and returns the quorum outcome and the
// summed synthetic delay of all collected votes.
func (b *Baseline) Decide(req quorumsim.Request) (bool, float64) {
	approvals, elapsed := pollAll(b.rng, b.pop, req)
	return quorumsim.ReachedQuorum(approvals, len(b.pop)), elapsed
}
