// Package experiment drives repeated consensus rounds against a protocol and
// aggregates the outcomes into throughput and correctness figures.
package experiment

import (
	"fmt"
	"time"

	"github.com/relab/quorumsim"
	"github.com/relab/quorumsim/protocol"
)

// Result holds the outcome of running one protocol over a fixed population
// for a fixed number of rounds.
type Result struct {
	// Throughput is the number of correct decisions per time unit.
	Throughput float64
	// Correct is the number of rounds that reached a true decision.
	Correct int
	// Rounds is the total number of rounds that were run.
	Rounds int
}

// CorrectRatio returns the fraction of rounds that reached a true decision.
func (r Result) CorrectRatio() float64 {
	return float64(r.Correct) / float64(r.Rounds)
}

// Runner runs experiments round by round.
//
// By default the elapsed time of an experiment is the sum of the sampled
// per-vote delays, which makes results deterministic for a given seed and
// independent of the hardware the simulation runs on. With RealDelay set, the
// runner instead suspends execution for each round's sampled delay and
// measures wall-clock time.
type Runner struct {
	RealDelay bool
}

// Run submits rounds fresh requests to the protocol and returns the
// aggregated result. It returns an error if rounds is not positive or if no
// synthetic time elapsed, since throughput is undefined in both cases.
func (r *Runner) Run(p protocol.Protocol, rounds int) (Result, error) {
	if rounds <= 0 {
		return Result{}, fmt.Errorf("round count must be positive: %d", rounds)
	}
	var (
		start   = time.Now()
		elapsed float64
		correct int
	)
	for i := 0; i < rounds; i++ {
		decision, delay := p.Decide(quorumsim.Request(""))
		if decision {
			correct++
		}
		if r.RealDelay {
			time.Sleep(time.Duration(delay * float64(time.Second)))
		} else {
			elapsed += delay
		}
	}
	if r.RealDelay {
		elapsed = time.Since(start).Seconds()
	}
	if elapsed <= 0 {
		return Result{}, fmt.Errorf("no time elapsed in %d rounds of %s: throughput undefined", rounds, p.Name())
	}
	return Result{
		Throughput: float64(correct) / elapsed,
		Correct:    correct,
		Rounds:     rounds,
	}, nil
}
