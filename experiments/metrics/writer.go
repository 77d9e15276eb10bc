package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type AgentKind string

const (
	AlphaBetaAgent AgentKind = "alphabeta"
	RandomAgent    AgentKind = "random"
)

type AgentConfig struct {
	ID            int
	Kind          AgentKind
	InitialDepth  int
	MaxDepth      int
	Budget        time.Duration
	TableCapacity int
	Seed          uint64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays red
	Agent2 int // AgentConfig.ID, plays white
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	runID   string
}

// NewWriter creates <root>/<name>/<run id> for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.NewString()
	baseDir := filepath.Join(root, name, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		runID:   runID,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "initial_depth", "max_depth", "budget", "table_capacity", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			string(config.Kind),
			strconv.Itoa(config.InitialDepth),
			strconv.Itoa(config.MaxDepth),
			config.Budget.String(),
			strconv.Itoa(config.TableCapacity),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "uuid", "agent1", "agent2", "starting_player", "winner", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "duration", "nodes", "completed_depth", "discarded_rounds", "score", "table_hits", "table_misses", "table_entries"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.CompletedDepth),
			strconv.Itoa(record.DiscardedRounds),
			strconv.Itoa(record.Score),
			strconv.FormatInt(record.TableHits, 10),
			strconv.FormatInt(record.TableMisses, 10),
			strconv.Itoa(record.TableEntries),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
