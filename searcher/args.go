package searcher

import "hinger/experiments/metrics"

const (
	// DefaultStepLimit bounds the number of expansions of a depth-first search.
	DefaultStepLimit = 10000
	// DefaultMaxDepth is the deepest limit tried by iterative deepening.
	DefaultMaxDepth = 50
)

type Option func(s *settings)

type settings struct {
	stepLimit int
	maxDepth  int
	metrics   metrics.Collector
}

func WithStepLimit(steps int) Option {
	return func(s *settings) {
		if steps > 0 {
			s.stepLimit = steps
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func newSettings(strategy Strategy, opts []Option) *settings {
	s := &settings{ // Default values
		stepLimit: DefaultStepLimit,
		maxDepth:  DefaultMaxDepth,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.Start(string(strategy))
	return s
}
