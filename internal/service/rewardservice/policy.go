package rewardservice

import (
	"math/rand"
	"sync"

	"github.com/mroth/weightedrand/v2"
)

const (
	dailyBaseMin     = 50
	dailyBaseMax     = 150
	dailyBonusChance = 10 // percent
	dailyBonusMin    = 50
	dailyBonusMax    = 200

	messageReward = 1

	perStreakBonus = 25
)

type spinTier struct {
	min, max int64
}

// Probability mass of the spin draw: mostly common, a thin mid band and a
// rare jackpot orders of magnitude larger.
var spinTiers = []weightedrand.Choice[spinTier, int]{
	weightedrand.NewChoice(spinTier{min: 10, max: 50}, 85),
	weightedrand.NewChoice(spinTier{min: 100, max: 300}, 14),
	weightedrand.NewChoice(spinTier{min: 5000, max: 10000}, 1),
}

// Policy computes reward magnitudes. It performs no I/O; all randomness
// comes from the injected source, so tests can seed it.
type Policy struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	chooser *weightedrand.Chooser[spinTier, int]
}

func NewPolicy(rnd *rand.Rand) (*Policy, error) {
	chooser, err := weightedrand.NewChooser(spinTiers...)
	if err != nil {
		return nil, err
	}
	return &Policy{rnd: rnd, chooser: chooser}, nil
}

func (p *Policy) DailyReward() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	reward := p.randRange(dailyBaseMin, dailyBaseMax)
	if p.rnd.Intn(100) < dailyBonusChance {
		reward += p.randRange(dailyBonusMin, dailyBonusMax)
	}
	return reward
}

func (p *Policy) MessageReward() int64 {
	return messageReward
}

func (p *Policy) SpinReward(streak int) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	tier := p.chooser.PickSource(p.rnd)
	return p.randRange(tier.min, tier.max) + int64(streak)*perStreakBonus
}

// randRange draws uniformly from [min, max]. Callers hold p.mu.
func (p *Policy) randRange(min, max int64) int64 {
	return min + p.rnd.Int63n(max-min+1)
}
