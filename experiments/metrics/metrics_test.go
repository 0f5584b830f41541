package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("bfs")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddExpansion()
			c.AddGenerated(3)
			c.AddPruned()
		}()
	}
	wg.Wait()

	metric := c.Complete()
	require.Equal(t, "bfs", metric.Strategy)
	require.Equal(t, 8, metric.Expansions)
	require.Equal(t, 24, metric.Generated)
	require.Equal(t, 8, metric.Pruned)

	t.Run("start resets the counters", func(t *testing.T) {
		c.Start("dfs")
		metric := c.Complete()
		require.Equal(t, "dfs", metric.Strategy)
		require.Zero(t, metric.Expansions)
		require.Zero(t, metric.Generated)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		d := NewDummyCollector()
		d.Start("bfs")
		d.AddExpansion()
		require.Equal(t, SearchMetric{}, d.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "paths")
	require.NoError(t, err)

	err = w.WritePathRecords([]PathRecord{{
		Scenario:     "corner",
		Found:        true,
		Length:       1,
		Cost:         4,
		SearchMetric: SearchMetric{Strategy: "bfs", Duration: time.Millisecond, Expansions: 2, Generated: 4, Pruned: 1},
	}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(w.Dir(), "path_records.csv"))
	require.NoError(t, err)
	require.Equal(t, "scenario,strategy,found,length,cost,duration,expansions,generated,pruned\n"+
		"corner,bfs,true,1,4,1ms,2,4,1\n", string(data))

	err = w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "p1", Move: "(0,1)", StateHash: 0xbeef}}})
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "game,step,player,move,state_hash,"), lines[0])
	require.True(t, strings.HasPrefix(lines[1], `1,1,p1,"(0,1)",beef,`), lines[1])
}
