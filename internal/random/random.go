package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/xxreen/MAID-BOT-24H/internal/random Picker

// Picker provides random index selection
type Picker interface {
	// Intn returns a uniformly random int in [0, n)
	Intn(n int) int
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand implements Picker using math/rand
type Rand struct {
	random *rand.Rand
}

// New creates a new seeded picker
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Rand{
		random: rand.New(source),
	}
}

// Intn returns a uniformly random int in [0, n)
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}
