package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/dotscreen/internal/anim"
)

// Store persists benchmark runs under a base directory, one subdirectory
// per run holding metadata.json and frames.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved benchmark run.
type RunMetadata struct {
	ID         string    `json:"id"`
	Scene      string    `json:"scene"`
	Timestamp  time.Time `json:"timestamp"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	TargetFPS  int       `json:"target_fps"`
	Frames     int       `json:"frames"`
	ActualRate float64   `json:"actual_rate"`
	Overruns   int       `json:"overruns"`
}

// Save writes a run's metadata and per-frame samples, returning the run id.
func (s *Store) Save(sceneName string, width, height, targetFPS int, stats anim.Stats) (string, error) {
	runID := fmt.Sprintf("%s_%d", sceneName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scene:      sceneName,
		Timestamp:  time.Now(),
		Width:      width,
		Height:     height,
		TargetFPS:  targetFPS,
		Frames:     stats.Frames,
		ActualRate: stats.ActualRate,
		Overruns:   stats.Overruns,
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "render_ms", "changed_cells"}); err != nil {
		return "", err
	}

	for i := 0; i < len(stats.FrameTimes) && i < len(stats.ChangedCells); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(float64(stats.FrameTimes[i].Microseconds())/1000.0, 'f', 3, 64),
			strconv.Itoa(stats.ChangedCells[i]),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all saved runs, skipping unreadable entries.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

// Load reads a single run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads a run's per-frame samples: render milliseconds and
// changed-cell counts.
func (s *Store) LoadFrames(runID string) (renderMs []float64, changed []int, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []int{}, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		ms, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		cells, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}
		renderMs = append(renderMs, ms)
		changed = append(changed, cells)
	}

	return renderMs, changed, nil
}
