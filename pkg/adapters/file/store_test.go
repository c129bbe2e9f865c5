package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylo101/DFA-Union/pkg/adapters/file"
	"github.com/dylo101/DFA-Union/pkg/automaton"
)

func sampleProduct() *automaton.Product {
	q0p0 := automaton.Pair{A: "q0", B: "p0"}
	q1p0 := automaton.Pair{A: "q1", B: "p0"}
	return &automaton.Product{
		States: []automaton.Pair{q0p0, q1p0},
		Transitions: map[automaton.Pair]map[string]automaton.Pair{
			q0p0: {"a": q1p0},
			q1p0: {"a": q1p0},
		},
		Start:   q0p0,
		Accepts: []automaton.Pair{q1p0},
	}
}

func TestStore_Save(t *testing.T) {
	store := file.NewStore()
	loader := file.NewLoader()
	ctx := context.Background()

	t.Run("JSON Round Trip", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "union.json")
		p := sampleProduct()

		require.NoError(t, store.Save(ctx, dst, p))

		reloaded, err := loader.Load(ctx, dst)
		require.NoError(t, err)
		assert.Equal(t, p.Flatten(), reloaded)
	})

	t.Run("YAML Round Trip", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "union.yaml")
		p := sampleProduct()

		require.NoError(t, store.Save(ctx, dst, p))

		reloaded, err := loader.Load(ctx, dst)
		require.NoError(t, err)
		assert.Equal(t, p.Flatten(), reloaded)
	})

	t.Run("Creates Missing Directories", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out", "deep", "union.json")
		require.NoError(t, store.Save(ctx, dst, sampleProduct()))

		_, err := os.Stat(dst)
		assert.NoError(t, err)
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "union.json")
		require.NoError(t, os.WriteFile(dst, []byte("stale"), 0644))

		require.NoError(t, store.Save(ctx, dst, sampleProduct()))

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"start-state": "q0,p0"`)
	})

	t.Run("Leaves No Temp Files Behind", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "union.json")
		require.NoError(t, store.Save(ctx, dst, sampleProduct()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "union.json", entries[0].Name())
	})

	t.Run("Empty Destination", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, "", sampleProduct()))
	})
}
