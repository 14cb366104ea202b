package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/strukt-dev/strukt/internal/colormap"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
)

// Store persists simulation runs, one directory per run: metadata.json
// with the summary and tuning, bodies.csv with per-body results.
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
	ID             string    `json:"id"`
	Scene          string    `json:"scene"`
	Timestamp      time.Time `json:"timestamp"`
	ForceScale     float64   `json:"force_scale"`
	SupportEpsilon float64   `json:"support_epsilon"`
	Magnitude      float64   `json:"magnitude"`
	TotalBodies    int       `json:"total_bodies"`
	FailedBodies   int       `json:"failed_bodies"`
	MaxStressRatio float64   `json:"max_stress_ratio"`
}

// Save writes one run and returns its ID.
func (s *Store) Save(sceneName string, forceScale, epsilon float64, f stress.Force, bodies []structure.Body, res *stress.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sceneName, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Scene:          sceneName,
		Timestamp:      time.Now(),
		ForceScale:     forceScale,
		SupportEpsilon: epsilon,
		Magnitude:      f.Magnitude,
		TotalBodies:    res.TotalBodies,
		FailedBodies:   res.FailedBodies,
		MaxStressRatio: res.MaxRatio,
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

	csvFile, err := os.Create(filepath.Join(runDir, "bodies.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"index", "shape", "material", "boundary", "mass_kg", "force_type", "stress_ratio", "failed", "color"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for i := range bodies {
		bs := res.PerBody[i]
		row := []string{
			strconv.Itoa(i),
			bodies[i].Shape.String(),
			bodies[i].Props.Kind.String(),
			bodies[i].Boundary.String(),
			strconv.FormatFloat(bodies[i].Mass(), 'f', 3, 64),
			bs.Type.String(),
			strconv.FormatFloat(bs.Ratio, 'g', -1, 64),
			strconv.FormatBool(bs.Failed),
			colormap.Hex(bs.Ratio, bs.Failed),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, w.Error()
}

// Meta loads one run's metadata.
func (s *Store) Meta(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// List returns every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Meta(e.Name())
		if err != nil {
			continue // skip partial or foreign directories
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// BodiesPath returns the per-body CSV location for a run.
func (s *Store) BodiesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "bodies.csv")
}
