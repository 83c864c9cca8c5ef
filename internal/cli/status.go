package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vbp1/workdir/internal/util/disk"
	"github.com/vbp1/workdir/pkg/workdir"
)

// Status is what `workdir status` reports about a path.
type Status struct {
	Path      string
	Exists    bool
	Kind      string
	Entries   int
	Gitignore bool
	Space     *disk.Space
}

// Inspect gathers Status for path without modifying anything.
func Inspect(path string) (Status, error) {
	st := Status{Path: path, Kind: "missing"}

	info, err := os.Lstat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return st, err
	default:
		st.Exists = true
		switch {
		case info.IsDir():
			st.Kind = "directory"
		case info.Mode()&os.ModeSymlink != 0:
			st.Kind = "symlink"
		default:
			st.Kind = "file"
		}
	}

	if st.Kind == "directory" {
		entries, err := os.ReadDir(path)
		if err != nil {
			return st, err
		}
		st.Entries = len(entries)
		if data, err := os.ReadFile(filepath.Join(path, workdir.GitignoreName)); err == nil {
			st.Gitignore = string(data) == workdir.GitignoreContent
		}
	}

	// report space of the closest existing ancestor
	probe := path
	for !st.Exists && probe != filepath.Dir(probe) {
		probe = filepath.Dir(probe)
		if _, err := os.Stat(probe); err == nil {
			break
		}
	}
	if sp, err := disk.FreeBytes(probe); err == nil {
		st.Space = &sp
	}
	return st, nil
}

func (s Status) print(w io.Writer) {
	yes := color.New(color.FgGreen).SprintFunc()
	no := color.New(color.FgYellow).SprintFunc()
	flag := func(b bool) string {
		if b {
			return yes("yes")
		}
		return no("no")
	}

	fmt.Fprintf(w, "path:       %s\n", s.Path)
	fmt.Fprintf(w, "exists:     %s\n", flag(s.Exists))
	fmt.Fprintf(w, "kind:       %s\n", s.Kind)
	if s.Kind == "directory" {
		fmt.Fprintf(w, "entries:    %d\n", s.Entries)
		fmt.Fprintf(w, "gitignore:  %s\n", flag(s.Gitignore))
	}
	if s.Space != nil {
		fmt.Fprintf(w, "space:      %s\n", s.Space)
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status PATH",
		Short: "Show what is at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := Inspect(args[0])
			if err != nil {
				return err
			}
			st.print(cmd.OutOrStdout())
			return nil
		},
	}
}
