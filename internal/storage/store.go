package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/stochlab/internal/engine"
)

// Store persists completed runs under a base directory, one
// subdirectory per run holding metadata.json and path.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Asset     string             `json:"asset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Initial   float64            `json:"initial"`
	Steps     int                `json:"steps"`
	Dt        float64            `json:"dt"`
	Summary   engine.Summary     `json:"summary"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) Save(seed int64, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Params.Model, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     string(result.Params.Model),
		Asset:     string(result.Params.Asset),
		Timestamp: time.Now(),
		Seed:      seed,
		Initial:   result.Params.Initial,
		Steps:     result.Params.Steps,
		Dt:        result.Params.Dt,
		Summary:   result.Summary,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "path.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := ExportCSV(csvFile, result.Path); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns metadata for every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, err
	}
	return meta, nil
}

// LoadPath reads a stored path back from its CSV file.
func (s *Store) LoadPath(runID string) ([]engine.PathPoint, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "path.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
