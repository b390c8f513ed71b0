package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFormatter stands in for makeblastdb and records every path it
// was asked to format.
type recordingFormatter struct {
	paths []string
	err   error
}

func (f *recordingFormatter) Format(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func testCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd
}

func writeTestGenome(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "genomeA.fa")
	require.NoError(t, os.WriteFile(path, []byte(">a\nMKVLITRA\n>b\nGGWQS\n"), 0644))
	return path
}

func TestRunFormatWithoutDir(t *testing.T) {
	genome := writeTestGenome(t, t.TempDir())
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, "", false, formatter)
	require.NoError(t, err)

	assert.Equal(t, []string{genome}, formatter.paths)
	assert.Empty(t, out.String())
}

func TestRunFormatWithDir(t *testing.T) {
	srcDir := t.TempDir()
	genome := writeTestGenome(t, srcDir)
	destDir := t.TempDir()
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, destDir, false, formatter)
	require.NoError(t, err)

	dest := filepath.Join(destDir, "genomeA.fa")
	assert.Equal(t, []string{dest}, formatter.paths)

	copied, err := os.ReadFile(dest)
	require.NoError(t, err)
	original, err := os.ReadFile(genome)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestRunFormatDirEqualsSourceDir(t *testing.T) {
	srcDir := t.TempDir()
	genome := writeTestGenome(t, srcDir)
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, srcDir, false, formatter)
	require.NoError(t, err)

	assert.Equal(t, []string{genome}, formatter.paths)
}

func TestRunFormatVerboseNamesBothPaths(t *testing.T) {
	genome := writeTestGenome(t, t.TempDir())
	destDir := t.TempDir()
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, destDir, true, formatter)
	require.NoError(t, err)

	dest := filepath.Join(destDir, "genomeA.fa")
	assert.Contains(t, out.String(), genome)
	assert.Contains(t, out.String(), dest)
	assert.Contains(t, out.String(), "formatting "+dest)
}

func TestRunFormatMissingGenome(t *testing.T) {
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), filepath.Join(t.TempDir(), "nope.fa"), "", false, formatter)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, formatter.paths)
}

func TestRunFormatDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	genome := filepath.Join(dir, "dup.fa")
	require.NoError(t, os.WriteFile(genome, []byte(">a\nMKV\n>a\nGGW\n"), 0644))
	destDir := t.TempDir()
	formatter := &recordingFormatter{}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, destDir, false, formatter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sequence id")
	assert.Empty(t, formatter.paths)

	// validation failed before staging, so nothing was copied
	_, statErr := os.Stat(filepath.Join(destDir, "dup.fa"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunFormatFormatterErrorPropagates(t *testing.T) {
	genome := writeTestGenome(t, t.TempDir())
	wantErr := errors.New("makeblastdb exploded")
	formatter := &recordingFormatter{err: wantErr}
	var out bytes.Buffer

	err := runFormat(testCommand(&out), genome, "", false, formatter)
	assert.ErrorIs(t, err, wantErr)
}
