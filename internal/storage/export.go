package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/san-kum/stochlab/internal/engine"
	"github.com/san-kum/stochlab/internal/pricing"
)

// csvHeader fixes the tabular field order. External consumers parse
// these columns positionally; do not reorder.
var csvHeader = []string{
	"index", "date", "value", "underlying", "pe", "earnings", "benchmark",
	"delta", "gamma", "vega", "theta", "rho",
}

const dateLayout = "2006-01-02"

// ExportCSV writes the path in the stable tabular layout. Greek columns
// stay empty for non-derivative paths.
func ExportCSV(w io.Writer, path []engine.PathPoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, pt := range path {
		row := []string{
			strconv.Itoa(pt.Index),
			pt.Date.Format(dateLayout),
			formatFloat(pt.Value),
			formatFloat(pt.Underlying),
			formatFloat(pt.PERatio),
			formatFloat(pt.ForwardEarnings),
			formatFloat(pt.Benchmark),
		}
		if pt.Greeks != nil {
			row = append(row,
				formatFloat(pt.Greeks.Delta),
				formatFloat(pt.Greeks.Gamma),
				formatFloat(pt.Greeks.Vega),
				formatFloat(pt.Greeks.Theta),
				formatFloat(pt.Greeks.Rho),
			)
		} else {
			row = append(row, "", "", "", "", "")
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a path written by ExportCSV.
func ReadCSV(r io.Reader) ([]engine.PathPoint, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty path file")
	}

	path := make([]engine.PathPoint, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("malformed row: expected %d fields, got %d", len(csvHeader), len(rec))
		}

		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("bad index %q: %w", rec[0], err)
		}
		date, err := time.Parse(dateLayout, rec[1])
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", rec[1], err)
		}

		pt := engine.PathPoint{
			Index:           idx,
			Date:            date,
			Value:           parseFloat(rec[2]),
			Underlying:      parseFloat(rec[3]),
			PERatio:         parseFloat(rec[4]),
			ForwardEarnings: parseFloat(rec[5]),
			Benchmark:       parseFloat(rec[6]),
		}
		if rec[7] != "" {
			pt.Greeks = &pricing.Greeks{
				Delta: parseFloat(rec[7]),
				Gamma: parseFloat(rec[8]),
				Vega:  parseFloat(rec[9]),
				Theta: parseFloat(rec[10]),
				Rho:   parseFloat(rec[11]),
			}
		}
		path = append(path, pt)
	}
	return path, nil
}

// ExportData is the structured export of one run.
type ExportData struct {
	RunMetadata
	Path []engine.PathPoint `json:"path"`
}

// ExportJSON writes metadata and the full path as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, path []engine.PathPoint) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: meta, Path: path})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
