package blast

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stage describes where a genome file starts and where it must end up
// before indexing. The BLAST indexes are generated in DestPath's directory.
type Stage struct {
	SourcePath string
	DestPath   string
	NeedsCopy  bool
}

// PlanStage resolves the genome and optional target directory to absolute
// paths and decides whether a copy is needed. It writes nothing to disk.
// The genome must exist; the target directory may not exist yet.
func PlanStage(genome, dir string) (Stage, error) {
	src, err := absPath(genome)
	if err != nil {
		return Stage{}, err
	}
	info, err := os.Stat(src)
	if err != nil {
		return Stage{}, fmt.Errorf("genome file: %w", err)
	}
	if info.IsDir() {
		return Stage{}, fmt.Errorf("genome file %s is a directory", src)
	}

	if dir == "" {
		return Stage{SourcePath: src, DestPath: src}, nil
	}
	destDir, err := absPath(dir)
	if err != nil {
		return Stage{}, err
	}
	dest := filepath.Join(destDir, filepath.Base(src))
	return Stage{SourcePath: src, DestPath: dest, NeedsCopy: dest != src}, nil
}

// Copy copies the source file to the destination, creating the target
// directory if needed. An existing file at the destination is overwritten.
func (s Stage) Copy() error {
	if !s.NeedsCopy {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.DestPath), 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}
	in, err := os.Open(s.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to open genome file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(s.DestPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.DestPath, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy genome to %s: %w", s.DestPath, err)
	}
	return out.Close()
}

// absPath expands a leading ~ and makes the path absolute.
func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
