package app

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/factorbench/internal/config"
	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/quantum"
)

func TestNewParsesArguments(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"factorbench", "-numbers", "15,21", "-algo", "fermat", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v\n%s", err, errBuf.String())
	}
	if a.Config.Algo != "fermat" {
		t.Errorf("Algo = %q, want fermat", a.Config.Algo)
	}
	if len(a.Config.Numbers) != 2 {
		t.Errorf("Numbers = %v, want two entries", a.Config.Numbers)
	}
	if a.Registry == nil {
		t.Error("Registry not initialized")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	var errBuf bytes.Buffer
	if _, err := New([]string{"factorbench", "-algo", "bogosort"}, &errBuf); err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}

func TestNewAcceptsShorKey(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"factorbench", "-algo", quantum.Key}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v\n%s", err, errBuf.String())
	}
	entries := a.selectEntries()
	if len(entries) != 1 || entries[0].Key != quantum.Key {
		t.Errorf("entries = %v, want the period-finding strategy alone", entries)
	}
}

func TestIsHelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"factorbench", "-h"}, &errBuf)
	if err == nil {
		t.Fatal("expected flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
}

func TestSelectEntriesOrder(t *testing.T) {
	a := &Application{
		Config:   config.AppConfig{Algo: "all", UseQuantum: true},
		Registry: factor.GlobalRegistry(),
	}
	entries := a.selectEntries()
	wantKeys := []string{factor.KeyTrialDivision, factor.KeyPollardRho, factor.KeyFermat, quantum.Key}
	if len(entries) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKeys))
	}
	for i, want := range wantKeys {
		if entries[i].Key != want {
			t.Errorf("entries[%d].Key = %q, want %q", i, entries[i].Key, want)
		}
	}
}

func TestSelectEntriesWithoutQuantum(t *testing.T) {
	a := &Application{
		Config:   config.AppConfig{Algo: "all"},
		Registry: factor.GlobalRegistry(),
	}
	entries := a.selectEntries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want the 3 classical algorithms", len(entries))
	}
	if entries[len(entries)-1].Key == quantum.Key {
		t.Error("period-finding strategy included without quantum mode")
	}
}

func TestResolveNumbers(t *testing.T) {
	base := &Application{Registry: factor.GlobalRegistry()}

	base.Config = config.AppConfig{Numbers: []*big.Int{big.NewInt(91)}}
	if got := base.resolveNumbers(); len(got) != 1 || got[0].Int64() != 91 {
		t.Errorf("explicit numbers: got %v", got)
	}

	base.Config = config.AppConfig{TestSuite: true}
	if got := base.resolveNumbers(); len(got) != 13 {
		t.Errorf("test suite: got %d numbers, want 13", len(got))
	}

	base.Config = config.AppConfig{}
	if got := base.resolveNumbers(); len(got) != 5 {
		t.Errorf("default demo: got %d numbers, want 5", len(got))
	}
}

func TestRunComparisonEndToEnd(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.json")
	var errBuf bytes.Buffer
	a, err := New([]string{"factorbench",
		"-numbers", "15,21,77",
		"-seed", "7",
		"-output", reportPath,
		"-quiet",
		"-no-color",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v\n%s", err, errBuf.String())
	}

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, errBuf.String())
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var doc struct {
		Summary []struct {
			Number     json.Number                `json:"number"`
			Algorithms map[string]json.RawMessage `json:"algorithms"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if len(doc.Summary) != 3 {
		t.Fatalf("summary has %d entries, want 3", len(doc.Summary))
	}
	for _, key := range []string{factor.KeyTrialDivision, factor.KeyPollardRho, factor.KeyFermat} {
		if _, ok := doc.Summary[0].Algorithms[key]; !ok {
			t.Errorf("summary missing %q", key)
		}
	}
}

func TestRunJSONOutput(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"factorbench",
		"-numbers", "15",
		"-seed", "7",
		"-json",
		"-output", "",
		"-no-color",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v\n%s", err, errBuf.String())
	}

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, errBuf.String())
	}

	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, out.String())
	}
	if _, ok := doc["detailed_results"]; !ok {
		t.Error("JSON output missing detailed_results")
	}
}

func TestRunExpiredContext(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"factorbench",
		"-numbers", "1000036000099",
		"-algo", "trial_division",
		"-quiet",
		"-output", "",
		"-timeout", "1ns",
	}, &errBuf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code == apperrors.ExitSuccess {
		t.Error("expired timeout should not exit with success")
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	if !HasVersionFlag([]string{"-server", "--version"}) {
		t.Error("--version not detected")
	}
	if HasVersionFlag([]string{"-numbers", "15"}) {
		t.Error("false positive version flag")
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "factorbench") {
		t.Errorf("version output missing program name:\n%s", buf.String())
	}
}
