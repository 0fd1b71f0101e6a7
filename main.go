package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rickbassham/fitsmeta/config"
	"github.com/rickbassham/fitsmeta/metadata"
	"github.com/rickbassham/fitsmeta/report"
)

func newRootCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fitsmeta <directory>",
		Short: "Extract metadata from FITS files",
		Long: `fitsmeta reads the RA, DEC, EXPTIME and DATE-OBS keywords from the primary
header of every *.fits file in a directory and writes them to a CSV summary,
one row per file. Keywords missing from a header are written as N/A.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument parsing, failures are not usage errors
			cmd.SilenceUsage = true
			return run(args[0], output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", report.DefaultPath, "Output CSV file name")

	return cmd
}

// run scans dir and writes the summary to output. Finding nothing to report
// is not an error; only failing to write the summary is.
func run(dir, output string, out io.Writer) error {
	log.Debug().Str("directory", dir).Str("pattern", metadata.Pattern).Msg("searching for files")

	files, err := metadata.FindFiles(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintf(out, "No FITS files found in %s\n", dir)
		return nil
	}

	fmt.Fprintf(out, "Found %d FITS files\n", len(files))

	batch := metadata.Collect(files, out)

	if batch.Skipped > 0 && len(batch.Records) > 0 {
		fmt.Fprintf(out, "Skipped %d of %d FITS files\n", batch.Skipped, batch.Found)
	}

	wrote, err := report.Write(output, batch.Records, out)
	if err != nil {
		return err
	}

	log.Debug().
		Int("found", batch.Found).
		Int("skipped", batch.Skipped).
		Bool("written", wrote).
		Msg("done")

	return nil
}

func initLogging(level zerolog.Level, format string) {
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stderr
	if format == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	initLogging(cfg.LogLevel, cfg.LogFormat)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
