package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"checkers/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)

	t.Run("run directory is created under the experiment name", func(t *testing.T) {
		require.Equal(t, filepath.Join(root, "depth", w.RunID()), w.Dir())
		require.DirExists(t, w.Dir())
	})

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: AlphaBetaAgent, InitialDepth: 2, MaxDepth: 6, Budget: 100 * time.Millisecond, TableCapacity: 1024},
			{ID: 2, Kind: RandomAgent, Seed: 7},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "alphabeta", "2", "6", "100ms", "1024", "0"}, rows[1])
		require.Equal(t, "random", rows[2][1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				ID:             "game-1",
				StartingPlayer: game.Red,
				Winner:         game.White,
				StartTime:      start,
				EndTime:        start.Add(time.Minute),
				Duration:       time.Minute,
				TotalMoves:     42,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{
			"1", "game-1", "1", "2", game.Red.String(), game.White.String(), "42",
			"2024-01-02T03:04:05Z", "2024-01-02T03:05:05Z", "1m0s",
		}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Red, SearchMetric: SearchMetric{Nodes: 10, CompletedDepth: 3, Score: 2, TableHits: 4}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.White}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "nodes", rows[0][4])
		require.Equal(t, "10", rows[1][4])
		require.Equal(t, "3", rows[1][5])
		require.Equal(t, "4", rows[1][8])
	})
}

func TestCollector(t *testing.T) {
	t.Run("collects nodes and depths", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.AddNode()
		c.CompleteDepth(3, 7)
		c.DiscardDepth(4)
		c.SetTable(5, 6, 11)

		m := c.Complete()

		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 3, m.CompletedDepth)
		require.Equal(t, 1, m.DiscardedRounds)
		require.Equal(t, 7, m.Score)
		require.Equal(t, int64(5), m.TableHits)
		require.Equal(t, int64(6), m.TableMisses)
		require.Equal(t, 11, m.TableEntries)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.DiscardDepth(2)
		c.Start()

		m := c.Complete()

		require.Zero(t, m.Nodes)
		require.Zero(t, m.DiscardedRounds)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
