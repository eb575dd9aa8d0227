// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/clrs/internal/config"
	"github.com/katalvlaran/clrs/matrix"
	"github.com/katalvlaran/clrs/multiply"
)

// ErrUnknownAlgorithm is returned by Kernel for a name it does not know.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Func multiplies two square matrices.
type Func[T matrix.Numeric] func(a, b matrix.Reader[T]) (*matrix.Dense[T], error)

// Kernel resolves an algorithm name to a multiplication function configured
// with cutoff and logger. Naive ignores both.
func Kernel[T matrix.Numeric](name string, cutoff int, logger *slog.Logger) (Func[T], error) {
	if cutoff < 1 {
		return nil, fmt.Errorf("bench: cutoff %d < 1: %w", cutoff, config.ErrInvalidConfig)
	}
	opts := []multiply.Option{multiply.WithCutoff(cutoff), multiply.WithLogger(logger)}

	switch name {
	case config.AlgoNaive:
		return multiply.Naive[T], nil
	case config.AlgoRecursive:
		return func(a, b matrix.Reader[T]) (*matrix.Dense[T], error) {
			return multiply.Recursive(a, b, opts...)
		}, nil
	case config.AlgoStrassen:
		return func(a, b matrix.Reader[T]) (*matrix.Dense[T], error) {
			return multiply.Strassen(a, b, opts...)
		}, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}
