package txlog

// Config holds construction parameters for a Log.
type Config struct {
	coin     Coin
	maxLevel int
	capacity int
}

// Option configures a Log.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		maxLevel: MaxLevel,
	}
}

// WithCoin sets the source of level promotions. Tests use it to pin down
// exact node heights.
func WithCoin(c Coin) Option {
	return func(cfg *Config) { cfg.coin = c }
}

// WithSeed uses the built-in generator with a fixed seed.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) { cfg.coin = NewRNGWithSeed(seed) }
}

// WithMaxLevel caps the number of levels. Values outside [1, MaxLevel] are
// clamped.
func WithMaxLevel(n int) Option {
	return func(cfg *Config) {
		switch {
		case n < 1:
			n = 1
		case n > MaxLevel:
			n = MaxLevel
		}
		cfg.maxLevel = n
	}
}

// WithCapacity pre-sizes the node arena for the expected number of entries.
func WithCapacity(n int) Option {
	return func(cfg *Config) { cfg.capacity = n }
}
