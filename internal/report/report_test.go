package report

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agbru/factorbench/internal/benchmark"
	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/orchestration"
)

func sampleRuns() []orchestration.ComparisonRun {
	return []orchestration.ComparisonRun{
		{
			Number: big.NewInt(15),
			Keys:   []string{factor.KeyTrialDivision, factor.KeyFermat},
			Results: map[string]benchmark.Result{
				factor.KeyTrialDivision: {
					Number:    big.NewInt(15),
					Algorithm: "Trial Division",
					Factors:   []*big.Int{big.NewInt(3), big.NewInt(5)},
					Duration:  1500 * time.Microsecond,
					Success:   true,
				},
				factor.KeyFermat: {
					Number:    big.NewInt(15),
					Algorithm: "Fermat's Factorization",
					Duration:  time.Millisecond,
					Err:       factor.ErrNoFactorization,
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	rep := Build(sampleRuns())

	if len(rep.Summary) != 1 || len(rep.DetailedResults) != 1 {
		t.Fatalf("got %d summary and %d detail entries, want 1 and 1",
			len(rep.Summary), len(rep.DetailedResults))
	}

	sum := rep.Summary[0]
	if sum.Number != "15" {
		t.Errorf("summary number = %s, want 15", sum.Number)
	}
	td, ok := sum.Algorithms[factor.KeyTrialDivision]
	if !ok {
		t.Fatalf("summary missing %q key", factor.KeyTrialDivision)
	}
	if !td.Success || td.TimeSeconds != 0.0015 {
		t.Errorf("trial division summary = %+v", td)
	}
	if sum.Algorithms[factor.KeyFermat].Success {
		t.Error("failed algorithm marked successful in summary")
	}

	detail := rep.DetailedResults[0].Results[factor.KeyTrialDivision]
	if !detail.ProductCheck {
		t.Error("product check should pass for 3 × 5 = 15")
	}
	if len(detail.Factors) != 2 || detail.Factors[0] != "3" || detail.Factors[1] != "5" {
		t.Errorf("factors = %v, want [3 5]", detail.Factors)
	}

	fermat := rep.DetailedResults[0].Results[factor.KeyFermat]
	if fermat.ProductCheck || fermat.Success {
		t.Errorf("failed run leaked success flags: %+v", fermat)
	}
	if len(fermat.Factors) != 0 {
		t.Errorf("failed run carries factors: %v", fermat.Factors)
	}
}

func TestWriteShape(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Build(sampleRuns()).Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// The wire shape is a contract: decode generically and check the keys.
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	for _, key := range []string{"summary", "detailed_results"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("report missing top-level %q section", key)
		}
	}

	summary := doc["summary"].([]any)[0].(map[string]any)
	if summary["number"] != float64(15) {
		t.Errorf("number serialized as %v, want the literal 15", summary["number"])
	}
	algos := summary["algorithms"].(map[string]any)
	entry := algos[factor.KeyTrialDivision].(map[string]any)
	for _, field := range []string{"success", "time_seconds"} {
		if _, ok := entry[field]; !ok {
			t.Errorf("summary entry missing %q field", field)
		}
	}

	detail := doc["detailed_results"].([]any)[0].(map[string]any)
	results := detail["results"].(map[string]any)
	full := results[factor.KeyTrialDivision].(map[string]any)
	for _, field := range []string{"number", "algorithm", "factors", "time_seconds", "success", "product_check"} {
		if _, ok := full[field]; !ok {
			t.Errorf("detailed entry missing %q field", field)
		}
	}
}

func TestWriteLargeNumberUnquoted(t *testing.T) {
	t.Parallel()
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	runs := []orchestration.ComparisonRun{{
		Number:  huge,
		Keys:    []string{factor.KeyTrialDivision},
		Results: map[string]benchmark.Result{factor.KeyTrialDivision: {Number: huge, Algorithm: "Trial Division"}},
	}}

	var buf bytes.Buffer
	if err := Build(runs).Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"123456789012345678901234567890"`)) {
		t.Error("large number serialized as a string, want a bare literal")
	}
	if !bytes.Contains(buf.Bytes(), []byte("123456789012345678901234567890")) {
		t.Error("large number missing from the report")
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "comparison_report.json")
	if err := Build(sampleRuns()).WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report back: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report file is not valid JSON: %v", err)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	t.Parallel()
	err := Build(nil).WriteFile(filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
