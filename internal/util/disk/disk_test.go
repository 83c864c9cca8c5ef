package disk

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFreeBytes(t *testing.T) {
	space, err := FreeBytes(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if space.Total == 0 {
		t.Fatalf("total cannot be zero: %+v", space)
	}
	if space.Free > space.Total {
		t.Fatalf("free exceeds total: %+v", space)
	}
}

func TestFreeBytesMissingPath(t *testing.T) {
	if _, err := FreeBytes(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestSpaceString(t *testing.T) {
	s := Space{Free: 1 << 20, Total: 4 << 20}
	if got := s.String(); !strings.Contains(got, "1.00 MB free of 4.00 MB") {
		t.Fatalf("unexpected format: %q", got)
	}
}
