// File: options.go
// Role: functional options for New, following the donor's GraphOption /
//       BuilderOption pattern (functional options over an unexported
//       config struct).
package treap

import "math/rand"

// WithRand supplies the *rand.Rand used to draw n's priority, instead of
// the package default. Passing a seeded *rand.Rand makes the resulting
// tree shape (and therefore every rotation taken by merge/split)
// reproducible across runs, which is what this module's fuzz and
// property tests rely on.
func WithRand[T any](r *rand.Rand) Option[T] {
	return func(cfg *config) {
		if r != nil {
			cfg.rand = r
		}
	}
}
