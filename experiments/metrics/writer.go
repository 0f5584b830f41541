package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type PathRecord struct {
	Scenario string
	Found    bool
	Length   int
	Cost     int
	SearchMetric
}

// Summary aggregates the path records of one strategy.
type Summary struct {
	Strategy       string
	Runs           int
	Found          int
	MeanExpansions float64
	StdExpansions  float64
	MeanDuration   time.Duration
	StdDuration    time.Duration
	MeanCost       float64 // over found paths only
}

type MatchRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	Reason string
	GameMetric
}

type MoveRecord struct {
	Game int // MatchRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WritePathRecords(records []PathRecord) error {
	header := []string{"scenario", "strategy", "found", "length", "cost", "duration", "expansions", "generated", "pruned"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Scenario,
			record.Strategy,
			strconv.FormatBool(record.Found),
			strconv.Itoa(record.Length),
			strconv.Itoa(record.Cost),
			record.Duration.String(),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Pruned),
		})
	}
	return w.write("path_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"strategy", "runs", "found", "mean_expansions", "std_expansions", "mean_duration", "std_duration", "mean_cost"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Strategy,
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Found),
			strconv.FormatFloat(s.MeanExpansions, 'f', 2, 64),
			strconv.FormatFloat(s.StdExpansions, 'f', 2, 64),
			s.MeanDuration.String(),
			s.StdDuration.String(),
			strconv.FormatFloat(s.MeanCost, 'f', 2, 64),
		})
	}
	return w.write("summaries.csv", header, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "reason", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "state_hash", "strategy", "duration", "expansions", "generated", "pruned"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.FormatUint(record.StateHash, 16),
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Pruned),
		})
	}
	return w.write("move_records.csv", header, rows)
}
