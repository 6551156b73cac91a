package experiment

import (
	"fmt"
	"math/rand"

	"github.com/relab/quorumsim/logging"
	"github.com/relab/quorumsim/metrics"
	"github.com/relab/quorumsim/participant"
	"github.com/relab/quorumsim/protocol"
)

// Sample is one point of a sweep series: the aggregated figures for one
// protocol at one fault ratio. The variances are sample variances across
// trials and are NaN when only a single trial was run.
type Sample struct {
	FaultRatio           float64
	Throughput           float64
	ThroughputVariance   float64
	CorrectRatio         float64
	CorrectRatioVariance float64
}

// Series is the ordered result sequence for one protocol, indexed like the
// sweep's ratio sequence.
type Series struct {
	Protocol string
	Samples  []Sample
}

// Sweep runs both protocols across a sequence of fault ratios.
//
// At each ratio, Trials independent populations are built, and each
// population is shared by a fresh instance of both protocols so that the two
// algorithms are compared against the identical fault composition and
// shuffle. Per-protocol throughput and correctness ratios are aggregated
// across trials with Welford's online algorithm.
type Sweep struct {
	// NumNodes is the population size at every ratio.
	NumNodes int
	// Rounds is the number of consensus rounds per experiment.
	Rounds int
	// Trials is the number of repetitions per ratio. Zero means one.
	Trials int
	// Ratios is the fault-ratio sequence, preserved in order in the output.
	Ratios []float64
	// RealDelay switches the runner to wall-clock timing.
	RealDelay bool

	logger logging.Logger
}

// protocolNames is the fixed evaluation order of the compared protocols.
var protocolNames = []string{protocol.NameBaseline, protocol.NameTrustFiltered}

type ratioStats struct {
	throughput   metrics.Welford
	correctRatio metrics.Welford
}

// Run executes the sweep, drawing all randomness from rng. It returns one
// series per protocol, each with one sample per ratio in input order.
func (s *Sweep) Run(rng *rand.Rand) ([]Series, error) {
	if s.logger == nil {
		s.logger = logging.New("sweep")
	}
	trials := s.Trials
	if trials <= 0 {
		trials = 1
	}
	runner := &Runner{RealDelay: s.RealDelay}
	series := make([]Series, len(protocolNames))
	for i, name := range protocolNames {
		series[i] = Series{Protocol: name, Samples: make([]Sample, 0, len(s.Ratios))}
	}

	for _, ratio := range s.Ratios {
		stats := make(map[string]*ratioStats, len(protocolNames))
		for _, name := range protocolNames {
			stats[name] = &ratioStats{}
		}
		for trial := 0; trial < trials; trial++ {
			pop, err := participant.NewPopulation(rng, s.NumNodes, ratio)
			if err != nil {
				return nil, fmt.Errorf("failed to build population at ratio %.2f: %w", ratio, err)
			}
			for _, name := range protocolNames {
				p, err := protocol.New(name, rng, pop)
				if err != nil {
					return nil, err
				}
				result, err := runner.Run(p, s.Rounds)
				if err != nil {
					return nil, fmt.Errorf("experiment failed at ratio %.2f: %w", ratio, err)
				}
				stats[name].throughput.Update(result.Throughput)
				stats[name].correctRatio.Update(result.CorrectRatio())
			}
		}
		for i, name := range protocolNames {
			tp, tpVar := stats[name].throughput.Get()
			cr, crVar := stats[name].correctRatio.Get()
			series[i].Samples = append(series[i].Samples, Sample{
				FaultRatio:           ratio,
				Throughput:           tp,
				ThroughputVariance:   tpVar,
				CorrectRatio:         cr,
				CorrectRatioVariance: crVar,
			})
			s.logger.Infof("ratio %.2f: %s throughput %.2f, correct %.1f%%", ratio, name, tp, cr*100)
		}
	}
	return series, nil
}
