package panel

import (
	"time"

	"github.com/zoobzio/pipz"
)

// Option configures the fetch pipeline of a Facade. Options wrap the fetch
// in the order given, so later options wrap earlier ones.
//
// Instance configuration (codec, clock, selection policy, etc.) is handled
// via chainable methods on the Facade.
type Option func(pipz.Chainable[*Request]) pipz.Chainable[*Request]

// buildPipeline wraps the terminal fetch with opts.
func buildPipeline(opts []Option) pipz.Chainable[*Request] {
	pipeline := fetchFrom(nil)
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// WithRetry retries a failed fetch immediately, up to maxAttempts in total.
func WithRetry(maxAttempts int) Option {
	return func(p pipz.Chainable[*Request]) pipz.Chainable[*Request] {
		return pipz.NewRetry("retry", p, maxAttempts)
	}
}

// WithBackoff retries a failed fetch with delays of baseDelay,
// 2*baseDelay, 4*baseDelay and so on.
func WithBackoff(maxAttempts int, baseDelay time.Duration) Option {
	return func(p pipz.Chainable[*Request]) pipz.Chainable[*Request] {
		return pipz.NewBackoff("backoff", p, maxAttempts, baseDelay)
	}
}

// WithTimeout fails the fetch if it takes longer than d.
func WithTimeout(d time.Duration) Option {
	return func(p pipz.Chainable[*Request]) pipz.Chainable[*Request] {
		return pipz.NewTimeout("timeout", p, d)
	}
}

// WithFallback tries each fallback source in order when the pipeline fails.
func WithFallback(sources ...Source) Option {
	return func(p pipz.Chainable[*Request]) pipz.Chainable[*Request] {
		all := make([]pipz.Chainable[*Request], 0, len(sources)+1)
		all = append(all, p)
		for _, src := range sources {
			all = append(all, fetchFrom(src))
		}
		return pipz.NewFallback("fallback", all...)
	}
}
