package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	f := NewFile(writeStore(t, `{"x": 3, "y": 5}`))
	pos, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 5}, pos)
}

func TestLoad_Negative(t *testing.T) {
	f := NewFile(writeStore(t, `{"x": -7, "y": -120}`))
	pos, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, Position{X: -7, Y: -120}, pos)
}

func TestLoad_StorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		op      string
	}{
		{"bad json", `{bad json`, "decode"},
		{"not an object", `[1, 2]`, "decode"},
		{"missing x", `{"y": 1}`, "decode"},
		{"missing y", `{"x": 1}`, "decode"},
		{"null y", `{"x": 1, "y": null}`, "decode"},
		{"float x", `{"x": 1.5, "y": 1}`, "decode"},
		{"string y", `{"x": 1, "y": "2"}`, "decode"},
		{"trailing data", `{"x": 1, "y": 2} {"x": 3}`, "decode"},
		{"null document", `null`, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFile(writeStore(t, tt.content)).Load()
			var serr *StorageError
			require.True(t, errors.As(err, &serr), "want StorageError, got %v", err)
			assert.Equal(t, tt.op, serr.Op)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	_, err := NewFile(path).Load()

	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "read", serr.Op)
	assert.Equal(t, path, serr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	for _, want := range []Position{{0, 0}, {3, 4}, {-1, 99}, {1 << 40, -(1 << 40)}} {
		require.NoError(t, NewFile(path).Save(want))
		got, err := NewFile(path).Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSave_PreservesExtraKeys(t *testing.T) {
	path := writeStore(t, `{"x": 1, "y": 2, "owner": "vinser", "trail": [1, 2]}`)
	f := NewFile(path)
	pos, err := f.Load()
	require.NoError(t, err)

	pos.Y--
	require.NoError(t, f.Save(pos))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 1, "y": 1, "owner": "vinser", "trail": [1, 2]}`, string(raw))
}

func TestSave_NestedAndUnicodeExtraKeys(t *testing.T) {
	const doc = `{"x":1,"y":2,"meta":{"a":[1,{"b":null}],"s":"é "},"name":"ходок ☃","big":12345678901234567890,"ratio":0.25}`
	const want = `{"x":1,"y":1,"meta":{"a":[1,{"b":null}],"s":"é "},"name":"ходок ☃","big":12345678901234567890,"ratio":0.25}`
	path := writeStore(t, doc)

	for i := 0; i < 500; i++ {
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		f := NewFile(path)
		pos, err := f.Load()
		require.NoError(t, err)
		pos.Y--
		require.NoError(t, f.Save(pos))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, want, string(raw), "iteration %d", i)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, NewFile(path).Save(Position{X: 1, Y: 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}

func TestSave_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "state.json")
	err := NewFile(path).Save(Position{})

	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "write", serr.Op)
}

func TestInit_DropsExtraKeys(t *testing.T) {
	path := writeStore(t, `{"x": 1, "y": 2, "owner": "vinser"}`)
	f := NewFile(path)
	_, err := f.Load()
	require.NoError(t, err)
	require.NoError(t, f.Init(Position{X: 5, Y: 6}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 5, "y": 6}`, string(raw))
}

func TestNewFile_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFile("").Path)
}
