package gamelog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/flip7sim/internal/game"
	"github.com/lox/flip7sim/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.jsonl")
	w, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(Record{GameIndex: 0, Seed: 42, Strategies: []string{"score15", "hand4"}, Winner: "score15", Totals: []int{210, 140}, Rounds: 9}))
	require.NoError(t, w.Write(Record{GameIndex: 1, Seed: 43, Error: "round aborted"}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, records, 2)
	assert.Equal(t, int64(42), records[0].Seed)
	assert.Equal(t, "score15", records[0].Winner)
	assert.Equal(t, []int{210, 140}, records[0].Totals)
	assert.Equal(t, "round aborted", records[1].Error)
}

func TestFromResult(t *testing.T) {
	a, err := strategy.Lookup("score15")
	require.NoError(t, err)
	b, err := strategy.Lookup("hand4")
	require.NoError(t, err)

	result, err := game.NewGame(game.Roster(a, b), game.DefaultRules(), 7).Run()
	require.NoError(t, err)

	rec := FromResult(3, result)
	assert.Equal(t, 3, rec.GameIndex)
	assert.Equal(t, int64(7), rec.Seed)
	assert.Equal(t, []string{"score15", "hand4"}, rec.Strategies)
	assert.Equal(t, result.Seats[result.Winner].Name, rec.Winner)
	assert.Len(t, rec.Played, result.Rounds)
}
