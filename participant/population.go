package participant

import (
	"fmt"
	"math/rand"

	"github.com/relab/quorumsim"
)

// Population is a shuffled collection of members. The position of a member
// carries no meaning; protocol logic must not rely on placement.
type Population []Member

// NewPopulation builds a population of n members of which floor(n*faultRatio)
// are faulty and the rest are honest, in a uniformly random order drawn from
// rng. It returns an error if n is negative or faultRatio is outside [0, 1];
// invalid parameters are never clamped.
func NewPopulation(rng *rand.Rand, n int, faultRatio float64) (Population, error) {
	if n < 0 {
		return nil, fmt.Errorf("population size must be non-negative: %d", n)
	}
	if faultRatio < 0 || faultRatio > 1 {
		return nil, fmt.Errorf("fault ratio must be within [0, 1]: %f", faultRatio)
	}
	numFaulty := int(float64(n) * faultRatio)
	pop := make(Population, 0, n)
	for i := 0; i < numFaulty; i++ {
		pop = append(pop, New(quorumsim.Faulty))
	}
	for i := numFaulty; i < n; i++ {
		pop = append(pop, New(quorumsim.Honest))
	}
	rng.Shuffle(len(pop), func(i, j int) {
		pop[i], pop[j] = pop[j], pop[i]
	})
	return pop, nil
}

// CountOf returns the number of members with the given classification.
func (p Population) CountOf(class quorumsim.Classification) int {
	count := 0
	for _, m := range p {
		if m.Classification() == class {
			count++
		}
	}
	return count
}

// Filter returns the members with the given classification, preserving order.
func (p Population) Filter(class quorumsim.Classification) Population {
	var filtered Population
	for _, m := range p {
		if m.Classification() == class {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
