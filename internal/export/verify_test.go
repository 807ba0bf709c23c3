package export

import (
	"bytes"
	"os"
	"testing"

	"github.com/vovakirdan/duckgen/internal/sprite"
)

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "", nil)
	frames := sprite.Frames()

	if _, err := w.WriteAll(frames); err != nil {
		t.Fatalf("WriteAll() failed: %v", err)
	}

	checks := w.Verify(frames)
	if len(checks) != len(frames) {
		t.Fatalf("expected %d checks, got %d", len(frames), len(checks))
	}
	if !AllOK(checks) {
		t.Fatalf("fresh output should verify, got %+v", checks)
	}

	// Missing file
	if err := os.Remove(w.Path(2)); err != nil {
		t.Fatal(err)
	}

	// Wrong picture: frame 7 stored where frame 6 belongs
	var buf bytes.Buffer
	if err := Encode(&buf, frames[6].Canvas); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(w.Path(6), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	// Not a PNG at all
	if err := os.WriteFile(w.Path(9), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	checks = w.Verify(frames)
	if AllOK(checks) {
		t.Fatal("expected verification failures")
	}

	expected := map[int]Status{2: StatusMissing, 6: StatusMismatch, 9: StatusUnreadable}
	for _, c := range checks {
		want, ok := expected[c.Index]
		if !ok {
			want = StatusOK
		}
		if c.Status != want {
			t.Errorf("frame %d status = %s, expected %s", c.Index, c.Status, want)
		}
	}

	if checks[5].Diff == 0 {
		t.Error("mismatch should report differing pixels")
	}
	if checks[8].Err == nil {
		t.Error("unreadable file should carry its error")
	}
}
