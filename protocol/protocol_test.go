package protocol

import (
	"math/rand"
	"testing"

	"github.com/relab/quorumsim"
	"github.com/relab/quorumsim/participant"
)

// fixedMember votes the same way every time and records how often it is polled.
type fixedMember struct {
	class   quorumsim.Classification
	approve bool
	delay   float64
	polls   int
}

func (m *fixedMember) Classification() quorumsim.Classification { return m.class }

func (m *fixedMember) Vote(_ *rand.Rand, _ quorumsim.Request) quorumsim.Vote {
	m.polls++
	return quorumsim.Vote{Approve: m.approve, Delay: m.delay}
}

func fixedPopulation(approvals, rejections int) participant.Population {
	var pop participant.Population
	for i := 0; i < approvals; i++ {
		pop = append(pop, &fixedMember{class: quorumsim.Honest, approve: true, delay: 0.01})
	}
	for i := 0; i < rejections; i++ {
		pop = append(pop, &fixedMember{class: quorumsim.Faulty, approve: false, delay: 0.1})
	}
	return pop
}

func TestBaselineThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name       string
		approvals  int
		rejections int
		want       bool
	}{
		{name: "TwoOfThree", approvals: 2, rejections: 1, want: true},
		{name: "OneOfThree", approvals: 1, rejections: 2, want: false},
		{name: "FourteenOfTwenty", approvals: 14, rejections: 6, want: true},
		{name: "ThirteenOfTwenty", approvals: 13, rejections: 7, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBaseline(rng, fixedPopulation(tt.approvals, tt.rejections))
			if got, _ := b.Decide(""); got != tt.want {
				t.Errorf("Decide() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestBaselinePollsEveryone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := fixedPopulation(18, 2)
	b := NewBaseline(rng, pop)
	decision, elapsed := b.Decide("")
	if !decision {
		t.Error("expected approval with 18 of 20 approving")
	}
	for i, m := range pop {
		if m.(*fixedMember).polls != 1 {
			t.Errorf("member %d polled %d times; want 1", i, m.(*fixedMember).polls)
		}
	}
	want := 18*0.01 + 2*0.1
	if elapsed < want-1e-9 || elapsed > want+1e-9 {
		t.Errorf("elapsed = %f; want %f", elapsed, want)
	}
}

func TestTrustFilteredExcludesFaulty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop, err := participant.NewPopulation(rng, 20, 0.2)
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}
	tf := NewTrustFiltered(rng, pop)
	if got, want := tf.TrustedSize(), pop.CountOf(quorumsim.Honest); got != want {
		t.Errorf("TrustedSize() = %d; want %d", got, want)
	}
}

func TestTrustFilteredNeverPollsFaulty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := fixedPopulation(3, 2)
	tf := NewTrustFiltered(rng, pop)
	for i := 0; i < 10; i++ {
		if decision, _ := tf.Decide(""); !decision {
			t.Fatal("expected approval from an all-honest trusted subset")
		}
	}
	for _, m := range pop {
		fm := m.(*fixedMember)
		if fm.class == quorumsim.Faulty && fm.polls != 0 {
			t.Errorf("faulty member polled %d times; want 0", fm.polls)
		}
	}
}

func TestTrustFilteredEmptyTrustedSubset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := fixedPopulation(0, 5)
	tf := NewTrustFiltered(rng, pop)
	decision, elapsed := tf.Decide("")
	if decision {
		t.Error("expected false decision with no trusted members")
	}
	if elapsed != 0 {
		t.Errorf("elapsed = %f; want 0", elapsed)
	}
	for _, m := range pop {
		if m.(*fixedMember).polls != 0 {
			t.Error("no member should be polled when the trusted subset is empty")
		}
	}
}

func TestAllHonestAlwaysApproves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop, err := participant.NewPopulation(rng, 20, 0.0)
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}
	for _, p := range []Protocol{NewBaseline(rng, pop), NewTrustFiltered(rng, pop)} {
		for i := 0; i < 100; i++ {
			if decision, _ := p.Decide(""); !decision {
				t.Fatalf("%s rejected a request with an all-honest population", p.Name())
			}
		}
	}
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := fixedPopulation(3, 0)
	for _, name := range []string{NameBaseline, NameTrustFiltered} {
		p, err := New(name, rng, pop)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Name() = %q; want %q", p.Name(), name)
		}
	}
	if _, err := New("paxos", rng, pop); err == nil {
		t.Error("expected error for unknown protocol name")
	}
}
