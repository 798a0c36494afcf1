// Package state persists the walker position between invocations.
package state

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

const (
	keyX = "x"
	keyY = "y"

	DefaultPath = "state.json"
)

// Position is the persisted (x, y) pair. No bounds are enforced.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// StorageError reports a missing, malformed or unwritable store.
type StorageError struct {
	Op   string // read, decode, encode or write
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return "state: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// File is a JSON mapping on disk holding at least the keys x and y.
// Other keys found at Load are written back untouched by Save.
type File struct {
	Path string

	extra map[string]any
}

// NewFile returns a store at path, or at DefaultPath when path is empty.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{Path: path}
}

// Load reads and validates the stored position.
func (f *File) Load() (Position, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return Position{}, f.fail("read", eris.Wrap(err, "reading position store"))
	}

	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return Position{}, f.fail("decode", eris.Wrap(err, "position store is not a JSON object"))
	}
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		return Position{}, f.fail("decode", eris.New("trailing data after position object"))
	}

	var pos Position
	if err := decodeInt(fields, keyX, &pos.X); err != nil {
		return Position{}, f.fail("decode", err)
	}
	if err := decodeInt(fields, keyY, &pos.Y); err != nil {
		return Position{}, f.fail("decode", err)
	}

	delete(fields, keyX)
	delete(fields, keyY)
	f.extra = fields
	return pos, nil
}

// Save writes the full mapping back. The file is replaced by rename so a
// crash mid-write leaves the previous store intact.
func (f *File) Save(pos Position) error {
	fields := make(map[string]any, len(f.extra)+2)
	for k, v := range f.extra {
		fields[k] = v
	}
	fields[keyX] = pos.X
	fields[keyY] = pos.Y

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return f.fail("encode", eris.Wrap(err, "encoding position"))
	}
	data = append(data, '\n')

	if err := writeAtomic(f.Path, data); err != nil {
		return f.fail("write", err)
	}
	return nil
}

// Init creates or truncates the store with pos and no extra keys.
func (f *File) Init(pos Position) error {
	f.extra = nil
	return f.Save(pos)
}

func (f *File) fail(op string, err error) error {
	return &StorageError{Op: op, Path: f.Path, Err: err}
}

func decodeInt(fields map[string]any, key string, dst *int) error {
	v, ok := fields[key]
	if !ok || v == nil {
		return eris.Errorf("missing key %q", key)
	}
	num, ok := v.(json.Number)
	if !ok {
		return eris.Errorf("key %q must be an integer, got %v", key, v)
	}
	n, err := strconv.ParseInt(num.String(), 10, 0)
	if err != nil {
		return eris.Errorf("key %q must be an integer, got %s", key, num)
	}
	*dst = int(n)
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return eris.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return eris.Wrap(err, "writing temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "closing temp file")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return eris.Wrap(err, "setting file mode")
	}
	return eris.Wrap(os.Rename(tmp.Name(), path), "replacing position store")
}
