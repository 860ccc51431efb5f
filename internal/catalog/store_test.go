package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStore_LoadJSON(t *testing.T) {
	t.Run("valid array document", func(t *testing.T) {
		dir := t.TempDir()
		writeContentFile(t, dir, "weapons.json", `[{"id": "weapon_001", "name": "Serpent Sword"}]`)

		store := NewStore(dir)
		doc, ok := store.LoadJSON("weapons.json")
		require.True(t, ok)

		records, ok := asRecords(doc)
		require.True(t, ok)
		require.Len(t, records, 1)
		assert.Equal(t, "weapon_001", records[0]["id"])
	})

	t.Run("missing file degrades to no data", func(t *testing.T) {
		store := NewStore(t.TempDir())
		doc, ok := store.LoadJSON("weapons.json")
		assert.False(t, ok)
		assert.Nil(t, doc)
	})

	t.Run("malformed JSON degrades to no data", func(t *testing.T) {
		dir := t.TempDir()
		writeContentFile(t, dir, "weapons.json", `[{"id": "weapon_001",`)

		store := NewStore(dir)
		_, ok := store.LoadJSON("weapons.json")
		assert.False(t, ok)
	})

	t.Run("non-mapping entries are dropped, not fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeContentFile(t, dir, "weapons.json", `[{"id": "a"}, "stray", {"id": "b"}]`)

		store := NewStore(dir)
		doc, ok := store.LoadJSON("weapons.json")
		require.True(t, ok)

		records, ok := asRecords(doc)
		require.True(t, ok)
		assert.Len(t, records, 2)
	})
}

func TestStore_SaveJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := NewStore(t.TempDir())

		data := []any{map[string]any{"id": "spell_001", "name": "Fireball"}}
		require.NoError(t, store.SaveJSON("spells.json", data))

		doc, ok := store.LoadJSON("spells.json")
		require.True(t, ok)

		records, ok := asRecords(doc)
		require.True(t, ok)
		require.Len(t, records, 1)
		assert.Equal(t, "Fireball", records[0]["name"])
	})

	t.Run("creates missing parent directory", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(filepath.Join(dir, "nested", "content"))

		require.NoError(t, store.SaveJSON("weapons.json", []any{}))
		assert.FileExists(t, filepath.Join(dir, "nested", "content", "weapons.json"))
	})
}

func TestAsRecord(t *testing.T) {
	t.Run("singleton document", func(t *testing.T) {
		rec, ok := asRecord(map[string]any{"id": "server_001"})
		require.True(t, ok)
		assert.Equal(t, "server_001", rec["id"])
	})

	t.Run("array document is not a singleton", func(t *testing.T) {
		_, ok := asRecord([]any{})
		assert.False(t, ok)
	})
}
