package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// AgentConfig describes an agent taking part in an experiment.
type AgentConfig struct {
	ID        int
	Kind      string // "bot" or "random"
	Depth     int
	Adversary string
	Pruning   bool
}

type GameRecord struct {
	ID     int
	Agents []int // AgentConfig.ID per seat, player 1 first
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the parquet layout of a MoveRecord.
type moveRow struct {
	Game       int32  `parquet:"game"`
	Step       int32  `parquet:"step"`
	Player     int32  `parquet:"player"`
	X          int32  `parquet:"x"`
	Y          int32  `parquet:"y"`
	Depth      int32  `parquet:"depth"`
	Adversary  string `parquet:"adversary,dict"`
	Pruning    bool   `parquet:"pruning"`
	DurationNs int64  `parquet:"duration_ns"`
	Explored   int64  `parquet:"explored"`
	Pruned     int64  `parquet:"pruned"`
	CacheHits  int64  `parquet:"cache_hits"`
	CacheSize  int64  `parquet:"cache_size"`
	Score      int64  `parquet:"score"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for the named experiment under dir.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "adversary", "pruning"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			config.Adversary,
			strconv.FormatBool(config.Pruning),
		})
	}
	if err := w.writeCSV("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agents", "players", "board_size", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		agents := make([]string, len(record.Agents))
		for i, id := range record.Agents {
			agents[i] = strconv.Itoa(id)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strings.Join(agents, ";"),
			strconv.Itoa(record.Players),
			strconv.Itoa(record.BoardSize),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	if err := w.writeCSV("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

// WriteMoveRecords stores the records both as CSV and as zstd parquet.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "x", "y", "depth", "adversary", "pruning", "duration", "explored", "pruned", "cache_hits", "cache_size", "score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.X),
			strconv.Itoa(record.Y),
			strconv.Itoa(record.Depth),
			record.Adversary,
			strconv.FormatBool(record.Pruning),
			record.Duration.String(),
			strconv.Itoa(record.Explored),
			strconv.Itoa(record.Pruned),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.CacheSize),
			strconv.Itoa(record.Score),
		})
	}
	if err := w.writeCSV("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	if err := w.writeMoveParquet(records); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

func (w *Writer) writeMoveParquet(records []MoveRecord) error {
	rows := make([]moveRow, len(records))
	for i, r := range records {
		rows[i] = moveRow{
			Game:       int32(r.Game),
			Step:       int32(r.Step),
			Player:     int32(r.Player),
			X:          int32(r.X),
			Y:          int32(r.Y),
			Depth:      int32(r.Depth),
			Adversary:  r.Adversary,
			Pruning:    r.Pruning,
			DurationNs: r.Duration.Nanoseconds(),
			Explored:   int64(r.Explored),
			Pruned:     int64(r.Pruned),
			CacheHits:  int64(r.CacheHits),
			CacheSize:  int64(r.CacheSize),
			Score:      int64(r.Score),
		}
	}

	// Write to a temp file and rename atomically.
	path := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
