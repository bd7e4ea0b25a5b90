// linkrank ranks the documents of a corpus directory, first by simulating a
// random surfer and then by power iteration, and prints both results.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vertex-lab/linkrank/pkg/corpus"
	"github.com/vertex-lab/linkrank/pkg/models"
	"github.com/vertex-lab/linkrank/pkg/pagerank"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkrank <corpus>",
		Short: "Rank the documents of a corpus by sampling and by iteration",
		Long: `linkrank reads the .html and .md documents of the corpus directory,
builds the graph of the links between them and prints the pagerank of each
document estimated by a random surfer and computed by power iteration.

Parameters are read from the environment (and from the env file), and
flags override them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env")
			if err := LoadEnvFile(envFile); err != nil {
				return err
			}

			config, err := LoadConfig()
			if err != nil {
				return err
			}
			defer config.CloseLogs()

			if err := applyFlags(cmd, &config.Pagerank); err != nil {
				return err
			}

			if err := config.Pagerank.Validate(); err != nil {
				return err
			}

			if config.DisplayConfig {
				config.Print(cmd.OutOrStdout())
			}

			return run(cmd.OutOrStdout(), args[0], config)
		},
	}

	flags := cmd.Flags()
	flags.String("env", ".env", "env file to load before reading the environment")
	flags.Float64("damping", pagerank.DefaultDamping, "probability of following a link instead of teleporting")
	flags.Int("samples", pagerank.DefaultSamples, "number of pages visited by the random surfer")
	flags.Float64("threshold", pagerank.DefaultThreshold, "iteration stops when no rank changes by this much")
	flags.Int("max-iterations", 0, "maximum number of power iterations; 0 derives it from damping and threshold")
	flags.Int("trials", 0, "number of concurrent sampling runs to cross-validate against iteration")
	flags.Int64("seed", 0, "seed of the random surfer; 0 seeds from the clock")
	return cmd
}

// applyFlags overrides the config with the flags explicitly set.
func applyFlags(cmd *cobra.Command, config *pagerank.Config) error {
	var err error
	flags := cmd.Flags()

	if flags.Changed("damping") {
		if config.Damping, err = flags.GetFloat64("damping"); err != nil {
			return err
		}
	}

	if flags.Changed("samples") {
		if config.Samples, err = flags.GetInt("samples"); err != nil {
			return err
		}
	}

	if flags.Changed("threshold") {
		if config.Threshold, err = flags.GetFloat64("threshold"); err != nil {
			return err
		}
	}

	if flags.Changed("max-iterations") {
		if config.MaxIterations, err = flags.GetInt("max-iterations"); err != nil {
			return err
		}
	}

	if flags.Changed("trials") {
		if config.Trials, err = flags.GetInt("trials"); err != nil {
			return err
		}
	}

	if flags.Changed("seed") {
		if config.Seed, err = flags.GetInt64("seed"); err != nil {
			return err
		}
	}

	return nil
}

func run(out io.Writer, dir string, config *Config) error {
	G, err := corpus.Load(dir)
	if err != nil {
		return err
	}

	p := config.Pagerank
	config.Log.Info("loaded %d documents with %d links and %d sinks from %s", G.Size(), G.Edges(), len(G.Sinks()), dir)

	sampled, err := pagerank.SampleSeeded(G, p.Damping, p.Samples, p.Seed)
	if err != nil {
		return err
	}
	PrintRanks(out, fmt.Sprintf("PageRank Results from Sampling (n = %d)", p.Samples), sampled)

	if p.Trials == 0 {
		iterated, err := pagerank.IterateWithConfig(G, p)
		if err != nil {
			return err
		}

		PrintRanks(out, "PageRank Results from Iteration", iterated)
		return nil
	}

	report, err := pagerank.CrossValidate(G, p)
	if err != nil {
		return err
	}

	PrintRanks(out, "PageRank Results from Iteration", report.Iterated)
	fmt.Fprintf(out, "Cross-validation (trials = %d)\n", report.Trials)
	fmt.Fprintf(out, "  distance: %.4f\n", report.Distance)
	fmt.Fprintf(out, "  max node difference: %.4f\n", report.MaxDifference)
	fmt.Fprintf(out, "  max trial distance: %.4f\n", report.MaxTrialDistance)
	return nil
}

// PrintRanks() prints the title and one line per page, sorted by page.
func PrintRanks(out io.Writer, title string, ranks models.PagerankMap) {
	fmt.Fprintln(out, title)
	for _, rank := range ranks.Sorted(false) {
		fmt.Fprintf(out, "  %s: %.4f\n", rank.Node, rank.Value)
	}
}
