// Package report builds and serializes the machine-readable comparison
// report. The JSON layout (summary and detailed_results sections, algorithm
// keys, time_seconds and product_check fields) is an external contract
// consumed by downstream tooling and must not change without versioning.
package report

import (
	"encoding/json"
	"io"
	"math/big"
	"os"

	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/orchestration"
)

// Report is the top-level document: a compact per-number summary followed by
// the full per-algorithm detail.
type Report struct {
	Summary         []NumberSummary `json:"summary"`
	DetailedResults []NumberDetail  `json:"detailed_results"`
}

// NumberSummary condenses one number's comparison to success flags and
// timings per algorithm key.
type NumberSummary struct {
	Number     json.Number                 `json:"number"`
	Algorithms map[string]AlgorithmSummary `json:"algorithms"`
}

// AlgorithmSummary is the compact view of one algorithm's outcome.
type AlgorithmSummary struct {
	Success     bool    `json:"success"`
	TimeSeconds float64 `json:"time_seconds"`
}

// NumberDetail carries the full result of every algorithm for one number.
type NumberDetail struct {
	Number  json.Number                `json:"number"`
	Results map[string]AlgorithmDetail `json:"results"`
}

// AlgorithmDetail is the full record of one (algorithm, number) invocation.
// ProductCheck is the independent verification of the claimed factors, as
// opposed to Success, which only records the algorithm's own claim.
type AlgorithmDetail struct {
	Number       json.Number   `json:"number"`
	Algorithm    string        `json:"algorithm"`
	Factors      []json.Number `json:"factors"`
	TimeSeconds  float64       `json:"time_seconds"`
	Success      bool          `json:"success"`
	ProductCheck bool          `json:"product_check"`
}

// Build assembles the report from the comparison runs, preserving input
// order in both sections.
func Build(runs []orchestration.ComparisonRun) Report {
	rep := Report{
		Summary:         make([]NumberSummary, 0, len(runs)),
		DetailedResults: make([]NumberDetail, 0, len(runs)),
	}
	for _, run := range runs {
		number := bigNumber(run.Number)
		summary := NumberSummary{
			Number:     number,
			Algorithms: make(map[string]AlgorithmSummary, len(run.Keys)),
		}
		detail := NumberDetail{
			Number:  number,
			Results: make(map[string]AlgorithmDetail, len(run.Keys)),
		}
		for _, key := range run.Keys {
			res := run.Results[key]
			summary.Algorithms[key] = AlgorithmSummary{
				Success:     res.Success,
				TimeSeconds: res.TimeSeconds(),
			}
			factors := make([]json.Number, len(res.Factors))
			for i, f := range res.Factors {
				factors[i] = bigNumber(f)
			}
			detail.Results[key] = AlgorithmDetail{
				Number:       number,
				Algorithm:    res.Algorithm,
				Factors:      factors,
				TimeSeconds:  res.TimeSeconds(),
				Success:      res.Success,
				ProductCheck: res.VerifyFactors(),
			}
		}
		rep.Summary = append(rep.Summary, summary)
		rep.DetailedResults = append(rep.DetailedResults, detail)
	}
	return rep
}

// Write serializes the report as indented JSON to the given writer.
func (r Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return apperrors.WrapError(err, "encoding comparison report")
	}
	return nil
}

// WriteFile writes the report to the given path in a single whole-buffer
// write.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return apperrors.WrapError(err, "encoding comparison report")
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WrapError(err, "writing comparison report to %s", path)
	}
	return nil
}

// bigNumber renders an arbitrary-precision integer as a bare JSON number
// literal, so that inputs beyond int64 survive serialization unquoted.
func bigNumber(n *big.Int) json.Number {
	return json.Number(n.String())
}
