package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	trp "github.com/jicksta/tideman"
	"github.com/jicksta/tideman/internal/prompt"
	"github.com/jicksta/tideman/report"
	"github.com/spf13/cobra"
)

const usage = "Usage: tideman [candidate ...]"

type options struct {
	configFile    string
	maxCandidates int
	onInvalid     string
	ballotsFile   string
	dotFile       string
	report        bool
	verbose       bool
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(trp.ExitCode(err))
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tideman [candidate ...]",
		Short: "Count a ranked-choice election with Tideman's ranked pairs method",
		Long: `Registers the candidates given as arguments, asks for the number of voters and each
voter's full ranking, and prints the winner. Pairs of candidates are locked in from the
largest margin of victory down, skipping any pair that would create a cycle.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(errOut, slog.LevelWarn, opts.verbose)
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cfg, opts, args, in, out, errOut)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.IntVar(&opts.maxCandidates, "max-candidates", trp.DefaultMaxCandidates, "Maximum number of candidates (env TIDEMAN_MAX_CANDIDATES)")
	flags.StringVar(&opts.onInvalid, "on-invalid", string(trp.PolicyAbort), "What to do with an invalid ballot: abort or retry (env TIDEMAN_INVALID_BALLOT)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every locked and skipped pair to stderr")

	root.Flags().StringVar(&opts.ballotsFile, "ballots", "", "Read ballots from a file instead of prompting, one \"<voterID> <choice> ...\" per line")
	root.Flags().StringVar(&opts.dotFile, "dot", "", "Write the locked graph to this file in Graphviz format")
	root.Flags().BoolVar(&opts.report, "report", false, "Print the preference and ranked pairs tables to stderr")

	root.AddCommand(newServeCmd(opts))

	return root
}

func run(cfg trp.Config, opts *options, args []string, in io.Reader, out, errOut io.Writer) error {
	election, err := trp.NewElection(cfg, args)
	if err != nil {
		return err
	}

	if opts.ballotsFile != "" {
		if err := castFromFile(election, opts.ballotsFile); err != nil {
			return err
		}
	} else {
		if err := castFromPrompt(election, prompt.New(in, out), out); err != nil {
			return err
		}
	}

	results := election.Results()
	for _, name := range results.WinnerNames() {
		fmt.Fprintln(out, name)
	}

	if opts.report {
		r := report.NewElectionReport(election, results)
		fmt.Fprint(errOut, "\nPreferences:\n\n")
		r.PrintPreferencesTable(errOut)
		fmt.Fprint(errOut, "\nRanked pairs:\n\n")
		r.PrintRankedPairsTable(errOut)
	}

	if opts.dotFile != "" {
		dot, err := results.DOT()
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.dotFile, dot, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.dotFile, err)
		}
	}

	return nil
}

func setupLogging(w io.Writer, level slog.Level, verbose bool) {
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, trp.ErrNoCandidates):
		return usage
	case errors.Is(err, trp.ErrCapacityExceeded):
		return err.Error()
	case trp.IsInvalidVote(err):
		return "Invalid vote.\n" + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
