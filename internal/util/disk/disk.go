package disk

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Space holds free and total bytes of a filesystem.
// Free counts blocks available to unprivileged users.
type Space struct {
	Free  uint64
	Total uint64
}

// FreeBytes reports space on the filesystem containing path.
func FreeBytes(path string) (Space, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Space{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	bsize := uint64(st.Bsize)
	return Space{Free: st.Bavail * bsize, Total: st.Blocks * bsize}, nil
}

func (s Space) String() string {
	return fmt.Sprintf("%.2f MB free of %.2f MB", bytesToMB(s.Free), bytesToMB(s.Total))
}

func bytesToMB(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
