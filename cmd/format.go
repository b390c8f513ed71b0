package cmd

import (
	"fmt"

	"github.com/rsdkit/rsd/internal/blast"
	"github.com/rsdkit/rsd/internal/config"
	"github.com/rsdkit/rsd/internal/fasta"
	"github.com/spf13/cobra"
)

var (
	formatGenome string
	formatDir    string
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Build BLAST search indexes for a FASTA protein genome",
	Long: `Build BLAST search indexes for a FASTA protein genome file.

The genome path is expanded and resolved to an absolute path. If --dir is
given, the genome is first copied into that directory and the indexes are
built next to the copy; an existing file at the destination is overwritten.
Without --dir the indexes are built next to the genome itself.

Nameline IDs in the genome must be unique, in the form ">id" or ">ns|id|...".

On failure the run aborts immediately; a partially copied genome is left on
disk for inspection.

Examples:
  rsd format -g genomes/Homo_sapiens.aa
  rsd format -g genomes/Homo_sapiens.aa -d /scratch/blastdb -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			var err error
			if cfg, err = config.LoadConfig(cfgFile, CLI_NAME); err != nil {
				return err
			}
		}
		formatter := &blast.MakeblastdbFormatter{
			Command: cfg.Makeblastdb,
			DBType:  cfg.DBType,
			Stderr:  cmd.ErrOrStderr(),
		}
		return runFormat(cmd, formatGenome, formatDir, verbose, formatter)
	},
}

// runFormat stages the genome and hands the staged path to the formatter.
// The indexes end up in the directory of the staged file, never next to
// the original when a copy was made.
func runFormat(cmd *cobra.Command, genome, dir string, verbose bool, formatter blast.Formatter) error {
	stage, err := blast.PlanStage(genome, dir)
	if err != nil {
		return err
	}
	if err := fasta.CheckNamelines(stage.SourcePath); err != nil {
		return fmt.Errorf("invalid genome file %s: %w", stage.SourcePath, err)
	}
	if stage.NeedsCopy {
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "copying %s to %s\n", stage.SourcePath, stage.DestPath)
		}
		if err := stage.Copy(); err != nil {
			return err
		}
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "formatting %s for blast\n", stage.DestPath)
	}
	return formatter.Format(stage.DestPath)
}

func init() {
	formatCmd.Flags().StringVarP(&formatGenome, "genome", "g", "", "path to the FASTA protein genome file (required)")
	formatCmd.Flags().StringVarP(&formatDir, "dir", "d", "", "copy the genome into this directory before indexing")
	_ = formatCmd.MarkFlagRequired("genome")

	rootCmd.AddCommand(formatCmd)
}
