package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"openhours-service/internal/app/services/core/businesses"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/metrics"
	"openhours-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildEnv provides the environment for the build command.
type buildEnv struct {
	flagCSV     string // CSV file of name,hours records.
	flagOut     string // Output file. If empty stdout is used.
	flagStrict  bool
	flagPretty  bool
	flagVerbose bool
	flagTimeout time.Duration
}

// getRootCmd returns the indexer command; it has no subcommands.
func getRootCmd() *cobra.Command {
	env := &buildEnv{}

	ret := &cobra.Command{
		Use:   "indexer",
		Short: "Build an opening hours index from a CSV file",
		Long: `
Parse every business in a CSV file of name,hours records, report the records
that could not be parsed, and write the resulting index snapshot as JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := env.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "indexer: %s\n", err)
			}
			return err
		},
	}
	ret.Flags().StringVarP(&env.flagCSV, "csv", "c", "data/restaurants.csv", "CSV file to index")
	ret.Flags().StringVarP(&env.flagOut, "out", "o", "", "Output file to use instead of stdout")
	ret.Flags().BoolVar(&env.flagStrict, "strict", false, "Fail on the first record that cannot be parsed")
	ret.Flags().BoolVar(&env.flagPretty, "pretty", false, "Indent the JSON output")
	ret.Flags().BoolVarP(&env.flagVerbose, "verbose", "v", false, "Log progress to stderr")
	ret.Flags().DurationVar(&env.flagTimeout, "timeout", time.Minute, "Give up after this long")

	return ret
}

func (b *buildEnv) run(ctx context.Context, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := zap.NewNop()
	if b.flagVerbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	usecase := businesses.NewBusinessUsecase(
		businesses.NewBusinessCSVSource(b.flagCSV, log),
		nil,
		metrics.New(),
		log,
		businesses.UsecaseConfig{Strict: b.flagStrict},
	)

	ctx, cancel := context.WithTimeout(utils.WithRequestID(ctx), b.flagTimeout)
	defer cancel()

	report, err := usecase.Reload(ctx, constvars.ReloadTriggerCLI)
	if err != nil {
		return err
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(stderr, "skipped %q (%q): %s\n", failure.Name, failure.Hours, failure.Error)
	}

	snapshot, err := usecase.Snapshot(ctx)
	if err != nil {
		return err
	}

	var data []byte
	if b.flagPretty {
		data, err = json.MarshalIndent(snapshot, "", "  ")
	} else {
		data, err = json.Marshal(snapshot)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if b.flagOut == "" {
		_, err = stdout.Write(data)
	} else {
		err = writeFileAtomic(b.flagOut, data)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "indexed %d of %d businesses, %d entries\n", report.Indexed, report.Records, report.Entries)
	return nil
}

// writeFileAtomic renames a finished temp file over path so readers never see
// a partial index.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
