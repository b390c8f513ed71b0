// Package fasta checks FASTA namelines before a genome is handed to the
// BLAST toolchain. makeblastdb is run with -parse_seqids, which requires
// every record ID to be unique.
package fasta

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineSize bounds scanner buffers; FASTA lines are conventionally
// wrapped at 60-80 columns but unwrapped sequences occur in the wild.
const maxLineSize = 1024 * 1024

// CheckNamelines scans the FASTA file at path and verifies every nameline
// carries a non-empty, unique ID. IDs are the first whitespace-delimited
// token after '>', so both ">id" and ">ns|id|..." forms are covered.
func CheckNamelines(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seen := make(map[string]int)
	count := 0
	lineno := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		count++
		fields := strings.Fields(line[1:])
		if len(fields) == 0 {
			return fmt.Errorf("empty nameline at line %d", lineno)
		}
		id := fields[0]
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("duplicate sequence id %q at lines %d and %d", id, prev, lineno)
		}
		seen[id] = lineno
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no namelines found")
	}
	return nil
}
