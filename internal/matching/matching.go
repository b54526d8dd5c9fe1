// Package matching holds the crossing algorithms that drive a book: the
// continuous double auction and OTC one-to-one bilateral matching.
package matching

import (
	"github.com/solumex/exchange-core/internal/core"
	"github.com/solumex/exchange-core/internal/domain"
)

type Algorithm string

const (
	AlgorithmContinuous Algorithm = "continuous"
	AlgorithmOTC        Algorithm = "otc"
)

// New returns the matcher implementing the named algorithm.
func New(algo Algorithm) (core.Matcher, error) {
	switch algo {
	case AlgorithmContinuous:
		return NewContinuous(), nil
	case AlgorithmOTC:
		return NewOTC(), nil
	}
	return nil, domain.NewError(domain.ErrCodeAlgorithmUnknown, "unknown matching algorithm %q", string(algo))
}
