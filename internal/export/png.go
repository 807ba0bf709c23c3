// Package export encodes painted frames as PNG files.
package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckgen/internal/core"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

// DefaultPrefix is the file name prefix used when none is configured.
const DefaultPrefix = "duck_anim"

// FileName returns the file name for a 1-based frame index, e.g. duck_anim_01.png.
func FileName(prefix string, index int) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s_%02d.png", prefix, index)
}

// Encode writes the canvas to w as an 8-bit RGBA PNG.
func Encode(w io.Writer, c *core.Canvas) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// Decode reads a PNG produced by Encode back into a canvas.
func Decode(r io.Reader) (*core.Canvas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("export: cannot decode png: %w", err)
	}
	c, err := core.CanvasFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return c, nil
}

// ReadFile decodes the PNG at path into a canvas.
func ReadFile(path string) (*core.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Result describes one written frame file.
type Result struct {
	Index  int
	Path   string
	Size   int    // Bytes written
	Digest string // Hex SHA-256 of the file contents
}

// Writer writes frames into a directory using a shared file name prefix.
type Writer struct {
	dir    string
	prefix string
	logger *log.Logger
}

// NewWriter creates a writer for dir. Empty dir means the working directory.
func NewWriter(dir, prefix string, logger *log.Logger) *Writer {
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Writer{dir: dir, prefix: prefix, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Prefix returns the file name prefix.
func (w *Writer) Prefix() string {
	return w.prefix
}

// Path returns the output path of the frame with the given index.
func (w *Writer) Path(index int) string {
	return filepath.Join(w.dir, FileName(w.prefix, index))
}

// Write encodes a single frame and writes it, replacing any existing file.
func (w *Writer) Write(f sprite.Frame) (Result, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f.Canvas); err != nil {
		return Result{}, err
	}

	path := w.Path(f.Index)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("export: cannot write %s: %w", path, err)
	}

	sum := sha256.Sum256(buf.Bytes())
	res := Result{
		Index:  f.Index,
		Path:   path,
		Size:   buf.Len(),
		Digest: hex.EncodeToString(sum[:]),
	}

	w.logger.Debug("wrote frame", "frame", f.Index, "name", f.Name, "path", path, "bytes", res.Size, "digest", res.Digest[:12])
	return res, nil
}

// WriteAll writes frames in order and stops at the first failure.
// Files written before the failure are left in place.
func (w *Writer) WriteAll(frames []sprite.Frame) ([]Result, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: cannot create directory %s: %w", w.dir, err)
	}

	results := make([]Result, 0, len(frames))
	for _, f := range frames {
		res, err := w.Write(f)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Summary returns the completion message for a set of written frames.
func Summary(results []Result) string {
	if len(results) == 0 {
		return "Created 0 files"
	}
	first := filepath.Base(results[0].Path)
	last := filepath.Base(results[len(results)-1].Path)
	return fmt.Sprintf("Created %d files: %s to %s", len(results), first, last)
}
