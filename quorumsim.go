// Package quorumsim defines the core types for simulating Byzantine quorum
// protocols under adversarial participation. A population of participants,
// each classified as either honest or faulty, repeatedly votes on requests.
// Two decision algorithms are compared: a baseline that counts votes from the
// whole population, and a trust-filtered variant that excludes participants
// classified as faulty before counting.
//
// The packages participant, protocol, and experiment build on these types to
// construct populations, decide rounds, and sweep the fault ratio.
package quorumsim

// Classification is the behavioral class assigned to a participant when its
// population is built. It never changes afterwards.
type Classification uint8

const (
	// Honest participants always approve and respond quickly.
	Honest Classification = iota
	// Faulty participants vote at random and respond slowly.
	Faulty
)

func (c Classification) String() string {
	switch c {
	case Honest:
		return "honest"
	case Faulty:
		return "faulty"
	default:
		return "invalid"
	}
}

// Request is a unit of work submitted to a protocol for one consensus
// decision. It carries no payload in this model.
//
// The string type is used because it is immutable and can hold arbitrary bytes of any length.
type Request string

// Vote is the response of a single participant to a single request.
type Vote struct {
	// Approve is true if the participant approved the request.
	Approve bool
	// Delay is the synthetic response time in time units. It is always
	// non-negative and is consumed before the vote is considered cast.
	Delay float64
}
