package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/stochlab/internal/engine"
	"github.com/san-kum/stochlab/internal/market"
	"github.com/san-kum/stochlab/internal/process"
	"github.com/san-kum/stochlab/internal/rng"
)

func testResult(t *testing.T, asset market.AssetClass) *engine.Result {
	t.Helper()
	p := engine.Params{
		Model:      process.GBM,
		Asset:      asset,
		Initial:    100,
		Steps:      5,
		Dt:         1.0 / 252,
		Start:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Volatility: 0.2,
		Drift:      0.05,
		Derivative: engine.DerivativeTerms{
			Strike: 100, Call: true, ImpliedVol: 0.2, Expiry: 0.5, RiskFree: 0.03,
		},
	}
	res, err := engine.New().Run(p, rng.New(11))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res
}

func TestSaveListLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	res := testResult(t, market.Equity)
	runID, err := store.Save(11, res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ID != runID {
		t.Errorf("expected id %s, got %s", runID, runs[0].ID)
	}
	if runs[0].Seed != 11 {
		t.Errorf("expected seed 11, got %d", runs[0].Seed)
	}

	path, err := store.LoadPath(runID)
	if err != nil {
		t.Fatalf("load path: %v", err)
	}
	if len(path) != 6 {
		t.Fatalf("expected 6 points, got %d", len(path))
	}
	if path[0].Date != time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected date %v", path[0].Date)
	}
}

func TestListEmptyDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if runs != nil {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestCSVRoundTripWithGreeks(t *testing.T) {
	res := testResult(t, market.Option)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, res.Path); err != nil {
		t.Fatalf("export: %v", err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	want := "index,date,value,underlying,pe,earnings,benchmark,delta,gamma,vega,theta,rho"
	if header != want {
		t.Errorf("unexpected header %q", header)
	}

	path, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(path) != len(res.Path) {
		t.Fatalf("expected %d points, got %d", len(res.Path), len(path))
	}
	if path[0].Greeks == nil {
		t.Fatal("expected greeks on option path")
	}
	if diff := path[0].Greeks.Delta - res.Path[0].Greeks.Delta; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("delta drifted through round trip: %f", diff)
	}
}

func TestCSVOmitsGreeksForPlainAssets(t *testing.T) {
	res := testResult(t, market.Equity)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, res.Path); err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasSuffix(lines[1], ",,,,,") {
		t.Errorf("expected empty greek columns, got %q", lines[1])
	}

	path, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if path[0].Greeks != nil {
		t.Error("expected nil greeks")
	}
}

func TestExportJSON(t *testing.T) {
	res := testResult(t, market.Option)

	var buf bytes.Buffer
	meta := RunMetadata{ID: "gbm_1", Model: "gbm", Asset: "option", Summary: res.Summary}
	if err := ExportJSON(&buf, meta, res.Path); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	for _, field := range []string{"\"id\"", "\"summary\"", "\"path\"", "\"delta\""} {
		if !strings.Contains(out, field) {
			t.Errorf("expected %s in JSON output", field)
		}
	}
}
