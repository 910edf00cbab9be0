package factor

import (
	"context"
	"math/big"
	"reflect"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	td := &TrialDivision{}
	if err := reg.Register("trial_division", td); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	got, err := reg.Get("trial_division")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != Algorithm(td) {
		t.Error("Get returned a different algorithm")
	}
}

func TestRegistryDuplicateKey(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if err := reg.Register("x", &TrialDivision{}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := reg.Register("x", &Fermat{}); err == nil {
		t.Error("duplicate Register should fail")
	}
}

func TestRegistryNilAlgorithm(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if err := reg.Register("nil", nil); err == nil {
		t.Error("Register(nil) should fail")
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if _, err := reg.Get("missing"); err == nil {
		t.Error("Get on empty registry should fail")
	}
}

// TestGlobalRegistryOrder pins the canonical comparison order: trial
// division is the baseline and must come first.
func TestGlobalRegistryOrder(t *testing.T) {
	t.Parallel()
	reg := GlobalRegistry()
	want := []string{KeyTrialDivision, KeyPollardRho, KeyFermat}
	if got := reg.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	algos := reg.GetAll()
	if len(algos) != len(want) {
		t.Fatalf("GetAll() returned %d algorithms, want %d", len(algos), len(want))
	}
	if algos[0].Name() != "Trial Division" {
		t.Errorf("first algorithm = %q, want Trial Division", algos[0].Name())
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(k, &TrialDivision{}); err != nil {
			t.Fatalf("Register(%q) failed: %v", k, err)
		}
	}
	want := []string{"alpha", "mid", "zeta"}
	if got := reg.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	// Keys preserves registration order for the orchestrator.
	wantKeys := []string{"zeta", "alpha", "mid"}
	if got := reg.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}
}

func TestOptionsNormalized(t *testing.T) {
	t.Parallel()
	opts := Options{}.normalized()
	if opts.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", opts.MaxIterations, DefaultMaxIterations)
	}
	if opts.Rand == nil {
		t.Error("normalized Options should carry a random source")
	}
}

// TestAlgorithmContractOnInvalidInput runs every registered algorithm over
// the invalid range and asserts the no-result outcome, never a panic.
func TestAlgorithmContractOnInvalidInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, algo := range GlobalRegistry().GetAll() {
		for _, n := range []int64{0, 1} {
			if factors, err := algo.Factorize(ctx, big.NewInt(n), seededOptions(1)); err == nil {
				t.Errorf("%s.Factorize(%d) = %v, want error", algo.Name(), n, factors)
			}
		}
	}
}
