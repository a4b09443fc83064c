package switches

import (
	"github.com/on-the-ground/switchcase/logging"
	"go.uber.org/zap"
)

// Exhaustion decides what Eval does when no case is selected.
type Exhaustion int

const (
	// FailOnExhaustion returns ErrNoMatch.
	FailOnExhaustion Exhaustion = iota

	// ZeroOnExhaustion returns the zero value and no error.
	ZeroOnExhaustion
)

func (e Exhaustion) String() string {
	switch e {
	case FailOnExhaustion:
		return "fail"
	case ZeroOnExhaustion:
		return "zero"
	default:
		return "unknown"
	}
}

type config struct {
	name       string
	logger     *zap.Logger
	cached     bool
	exhaustion Exhaustion
}

func defaultConfig() config {
	return config{
		name:       "switch",
		logger:     logging.NewNop(),
		cached:     true,
		exhaustion: FailOnExhaustion,
	}
}

// Option configures a Switch.
type Option func(*config)

// WithName sets the name used in logs and error messages.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger receiving dispatch entries at debug level.
// A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithoutCache makes every Eval rescan the cases and rerun the selected body.
func WithoutCache() Option {
	return func(c *config) {
		c.cached = false
	}
}

// WithExhaustion sets the no-match behaviour.
func WithExhaustion(e Exhaustion) Option {
	return func(c *config) {
		c.exhaustion = e
	}
}
