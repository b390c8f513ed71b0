package cmd

import (
	"fmt"

	"github.com/rsdkit/rsd/internal/config"
	"github.com/spf13/cobra"
)

var (
	CLI_NAME = "rsd"

	Version   = "dev"
	BuildTime = "unknown"

	verbose bool
	cfgFile string
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:   CLI_NAME,
		Short: fmt.Sprintf("%s prepares protein genomes for reciprocal BLAST searches", CLI_NAME),
		Long: fmt.Sprintf(`%s stages FASTA protein genome files for the BLAST toolchain.
It resolves paths, optionally copies a genome into a working directory, and
builds BLAST search indexes alongside the staged file.`, CLI_NAME),
		Version: fmt.Sprintf("%s (built at %s)", Version, BuildTime),
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress messages")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/rsd/.rsd.yaml)")

	rootCmd.AddCommand(versionCmd)
}
