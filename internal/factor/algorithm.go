// Package factor provides implementations of classical integer factorization
// algorithms and the arithmetic primitives they share.
// This file defines the algorithm plug-in contract and the registry through
// which implementations are discovered.
package factor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// ErrNoFactorization is the explicit "no result" signal of the algorithm
// contract. It is returned when an algorithm exhausts its iteration budget,
// when the input is below 2, or when no non-trivial factorization exists
// within the strategy's reach. It is never a programming error.
var ErrNoFactorization = errors.New("no factorization found")

// DefaultMaxIterations is the default iteration budget for the iterative and
// randomized algorithms (Pollard's rho cycle search, Fermat's square search).
const DefaultMaxIterations = 100_000

// TrialFallbackLimit is the value below which the Pollard rho factorizer
// falls back to exhaustive trial division when the rho step fails to split a
// composite.
const TrialFallbackLimit = 10_000

// ctxCheckInterval is how many loop iterations an algorithm runs between
// context cancellation checks. Checking every iteration would dominate the
// cost of the cheap loop bodies.
const ctxCheckInterval = 1024

// Options carries the tunable parameters shared by all factorization
// algorithms. A zero Options value is usable: defaults are applied by the
// consuming algorithm via the normalized method.
type Options struct {
	// MaxIterations bounds the search loops of the iterative algorithms.
	// Zero or negative selects DefaultMaxIterations.
	MaxIterations int
	// Rand is the pseudorandom source used by the randomized algorithms.
	// Injecting a seeded source makes runs reproducible under test. When
	// nil, a time-seeded source is created on first use.
	Rand *rand.Rand
}

// normalized returns a copy of o with defaults applied.
func (o Options) normalized() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Algorithm is the contract every factorization strategy implements,
// including external period-finding collaborators. Factorize returns a
// non-empty ascending-friendly list of factors >= 2 whose product equals n,
// or ErrNoFactorization. Implementations must not panic for any n >= 0;
// unexpected internal failures are returned as errors and converted to
// failed results at the benchmark runner boundary.
type Algorithm interface {
	// Name returns the human-readable name of the strategy.
	Name() string

	// Factorize attempts to factor n.
	//
	// Parameters:
	//   - ctx: The context for cancellation of long searches.
	//   - n: The number to factor.
	//   - opts: Iteration budget and randomness source.
	//
	// Returns:
	//   - []*big.Int: The factors, each >= 2, product equal to n.
	//   - error: ErrNoFactorization when no result was found, or an
	//     internal error.
	Factorize(ctx context.Context, n *big.Int, opts Options) ([]*big.Int, error)
}

// Registry holds the available algorithms, preserving registration order.
// Registration order matters: the comparison orchestrator runs algorithms in
// the order they were registered so that reports are stable across runs.
type Registry struct {
	mu    sync.RWMutex
	algos map[string]Algorithm
	order []string
}

// NewRegistry creates an empty algorithm registry.
func NewRegistry() *Registry {
	return &Registry{algos: make(map[string]Algorithm)}
}

// Register adds an algorithm under the given key. Registering a duplicate
// key is a programming error and returns an error rather than overwriting.
func (r *Registry) Register(key string, algo Algorithm) error {
	if algo == nil {
		return fmt.Errorf("cannot register nil algorithm under %q", key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.algos[key]; exists {
		return fmt.Errorf("algorithm %q already registered", key)
	}
	r.algos[key] = algo
	r.order = append(r.order, key)
	return nil
}

// Get returns the algorithm registered under key.
func (r *Registry) Get(key string) (Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	algo, ok := r.algos[key]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %q", key)
	}
	return algo, nil
}

// List returns the registered keys in sorted order, for help text and
// configuration validation.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	sort.Strings(keys)
	return keys
}

// Keys returns the registered keys in registration order, which is the
// execution order used by the comparison orchestrator.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// GetAll returns all registered algorithms in registration order.
func (r *Registry) GetAll() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	algos := make([]Algorithm, 0, len(r.order))
	for _, key := range r.order {
		algos = append(algos, r.algos[key])
	}
	return algos
}

// Classical algorithm registry keys. These keys are part of the report's
// external contract and must not change without versioning the report.
const (
	KeyTrialDivision = "trial_division"
	KeyPollardRho    = "pollard_rho"
	KeyFermat        = "fermat"
)

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns the process-wide registry, populated with the
// classical algorithms in their canonical comparison order: trial division
// first (it is the speedup baseline), then Pollard's rho, then Fermat.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
		// Registration errors are impossible here: keys are distinct
		// constants.
		_ = globalRegistry.Register(KeyTrialDivision, &TrialDivision{})
		_ = globalRegistry.Register(KeyPollardRho, &PollardRho{})
		_ = globalRegistry.Register(KeyFermat, &Fermat{})
	})
	return globalRegistry
}

// checkCtx returns the context error wrapped with the algorithm name, or nil.
func checkCtx(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s interrupted: %w", name, err)
	}
	return nil
}
