package roulette

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roulette.go github.com/jdramirez/giftmatch/internal/roulette Picker

// Picker selects one entry out of n. Injected into the exchange service
// so tests can substitute a deterministic pick.
type Picker interface {
	// Pick returns an index in [0, n), or 0 when n <= 0
	Pick(n int) int
}

// Roulette provides random partner selection
type Roulette struct {
	random *rand.Rand
}

// Config for the roulette
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new roulette
func New(cfg *Config) *Roulette {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Roulette{
		random: random,
	}
}

// Pick returns a uniformly random index in [0, n). A pool of zero or
// fewer entries yields 0.
func (r *Roulette) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return r.random.Intn(n)
}
