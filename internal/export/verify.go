package export

import (
	"errors"
	"io/fs"

	"github.com/vovakirdan/duckgen/internal/sprite"
)

// Status is the outcome of checking one frame file on disk.
type Status string

const (
	StatusOK         Status = "ok"
	StatusMissing    Status = "missing"
	StatusUnreadable Status = "unreadable"
	StatusMismatch   Status = "mismatch"
)

// Check is the verification result for a single frame.
type Check struct {
	Index  int
	Path   string
	Status Status
	Diff   int   // Number of differing pixels when Status is StatusMismatch
	Err    error // Decode or open error when Status is StatusUnreadable
}

// Verify compares each frame with the file the writer would produce for it.
func (w *Writer) Verify(frames []sprite.Frame) []Check {
	checks := make([]Check, 0, len(frames))
	for _, f := range frames {
		chk := Check{Index: f.Index, Path: w.Path(f.Index), Status: StatusOK}

		got, err := ReadFile(chk.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			chk.Status = StatusMissing
		case err != nil:
			chk.Status = StatusUnreadable
			chk.Err = err
		default:
			if diff := f.Canvas.Diff(got); len(diff) > 0 {
				chk.Status = StatusMismatch
				chk.Diff = len(diff)
			}
		}

		w.logger.Debug("verified frame", "frame", f.Index, "path", chk.Path, "status", chk.Status)
		checks = append(checks, chk)
	}
	return checks
}

// AllOK reports whether every check passed.
func AllOK(checks []Check) bool {
	for _, c := range checks {
		if c.Status != StatusOK {
			return false
		}
	}
	return true
}
