package blast

import (
	"fmt"
	"io"
	"os/exec"
)

// Formatter ensures usable BLAST search indexes exist alongside the FASTA
// file at the given path.
type Formatter interface {
	Format(path string) error
}

// MakeblastdbFormatter builds indexes by running the NCBI makeblastdb tool.
// Its stdout is discarded to keep the run quiet; stderr is passed through
// so toolchain diagnostics reach the user.
type MakeblastdbFormatter struct {
	Command string // makeblastdb binary, defaults to "makeblastdb"
	DBType  string // BLAST database type, defaults to "prot"
	Stderr  io.Writer
}

func (f *MakeblastdbFormatter) Format(path string) error {
	command := f.Command
	if command == "" {
		command = "makeblastdb"
	}
	dbtype := f.DBType
	if dbtype == "" {
		dbtype = "prot"
	}

	cmd := exec.Command(command, "-in", path, "-dbtype", dbtype, "-parse_seqids")
	cmd.Stdout = io.Discard
	cmd.Stderr = f.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed for %s: %w", command, path, err)
	}
	return nil
}
