package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/smahesh/orbitlab/internal/orbit"
	"github.com/smahesh/orbitlab/internal/sim"
)

// Store persists runs under a base directory, one subdirectory per run:
// metadata.json plus trajectories.csv.
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
	Timestamp time.Time          `json:"timestamp"`
	GM        float64            `json:"gm"`
	Dt        float64            `json:"dt"`
	Tmax      float64            `json:"tmax"`
	Workers   int                `json:"workers"`
	NumBodies int                `json:"num_bodies"`
	Steps     int                `json:"steps"`
	Drift     float64            `json:"energy_drift"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Field reconstructs the central force law the run was integrated in.
func (m *RunMetadata) Field() orbit.Central {
	return orbit.Central{GM: m.GM}
}

func (s *Store) Save(gm float64, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		GM:        gm,
		Dt:        cfg.Dt,
		Tmax:      cfg.Tmax,
		Workers:   cfg.Workers,
		NumBodies: len(result.Trajectories),
		Steps:     result.StepsTaken,
		Drift:     result.EnergyDrift,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for i := range result.Trajectories {
		header = append(header,
			fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i),
			fmt.Sprintf("b%d_vx", i), fmt.Sprintf("b%d_vy", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for step := range result.Times {
		row := []string{strconv.FormatFloat(result.Times[step], 'f', 6, 64)}
		for _, tr := range result.Trajectories {
			smp := tr.At(step)
			row = append(row,
				strconv.FormatFloat(smp.Pos.X, 'f', 9, 64),
				strconv.FormatFloat(smp.Pos.Y, 'f', 9, 64),
				strconv.FormatFloat(smp.Vel.X, 'f', 9, 64),
				strconv.FormatFloat(smp.Vel.Y, 'f', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

// LoadTrajectories reads a run back as per-body trajectories plus the
// shared time axis. Rows that fail to parse are skipped, matching the
// lenient read side of the CSV round trip.
func (s *Store) LoadTrajectories(runID string) ([]*orbit.Trajectory, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 1 {
		return []*orbit.Trajectory{}, []float64{}, nil
	}

	numBodies := (len(records[0]) - 1) / 4
	trajectories := make([]*orbit.Trajectory, numBodies)
	for i := range trajectories {
		trajectories[i] = orbit.NewTrajectory(len(records) - 1)
	}
	times := make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 1+numBodies*4 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		ok := true
		row := make([]orbit.Body, numBodies)
		for i := 0; i < numBodies; i++ {
			vals := make([]float64, 4)
			for j := 0; j < 4; j++ {
				v, err := strconv.ParseFloat(record[1+i*4+j], 64)
				if err != nil {
					ok = false
					break
				}
				vals[j] = v
			}
			if !ok {
				break
			}
			row[i] = orbit.Body{
				Pos: orbit.Vec2{X: vals[0], Y: vals[1]},
				Vel: orbit.Vec2{X: vals[2], Y: vals[3]},
			}
		}
		if !ok {
			continue
		}

		times = append(times, t)
		for i := 0; i < numBodies; i++ {
			trajectories[i].Append(row[i])
		}
	}

	return trajectories, times, nil
}
