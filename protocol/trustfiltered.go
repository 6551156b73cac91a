package protocol

import (
	"math/rand"

	"github.com/relab/quorumsim"
	"github.com/relab/quorumsim/participant"
)

// NameTrustFiltered identifies the trust-filtered protocol.
const NameTrustFiltered = "trust-filtered"

// TrustFiltered is the quorum protocol that excludes participants classified
// as faulty. The population is partitioned once at construction; members
// outside the trusted subset are never polled by this instance.
type TrustFiltered struct {
	rng     *rand.Rand
	trusted participant.Population
}

// NewTrustFiltered returns a trust-filtered protocol over the given
// population. Only the members classified as honest take part in voting.
func NewTrustFiltered(rng *rand.Rand, pop participant.Population) *TrustFiltered {
	return &TrustFiltered{
		rng:     rng,
		trusted: pop.Filter(quorumsim.Honest),
	}
}

// Name returns the name of the decision algorithm.
func (t *TrustFiltered) Name() string { return NameTrustFiltered }

// TrustedSize returns the number of members eligible to vote.
func (t *TrustFiltered) TrustedSize() int { return len(t.trusted) }

// Decide polls the trusted subset and returns the quorum outcome and the
// summed synthetic delay of all collected votes. If the trusted subset is
// empty, the decision is false and no votes are collected.
func (t *TrustFiltered) Decide(req quorumsim.Request) (bool, float64) {
	if len(t.trusted) == 0 {
		return false, 0
	}
	approvals, elapsed := pollAll(t.rng, t.trusted, req)
	return quorumsim.ReachedQuorum(approvals, len(t.trusted)), elapsed
}
