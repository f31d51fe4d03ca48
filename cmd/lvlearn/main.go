// Package main provides the lvlearn CLI: one subcommand per classifier plus
// a synthetic dataset generator.
//
// Datasets are text files with one labeled point per line (see package
// dataset); results print one line per test point in the three-space
// reporting format. Errors are fail-fast: the first malformed line or
// violated precondition aborts the run with a nonzero exit code.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlearn/classify"
	"github.com/katalvlaran/lvlearn/dataset"
	"github.com/katalvlaran/lvlearn/vector"
)

const version = "0.1.0"

// params are the tunable hyperparameters, loadable from a YAML file via
// --config. Explicit flags win over file values.
type params struct {
	Neighbors    int     `yaml:"neighbors"`
	LearningRate float64 `yaml:"learning_rate"`
	Threshold    float64 `yaml:"threshold"`
	Seed         int64   `yaml:"seed"`
}

func defaultParams() params {
	return params{
		Neighbors:    1,
		LearningRate: classify.DefaultLearningRate,
		Threshold:    classify.DefaultThreshold,
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "lvlearn",
		Short: "lvlearn - supervised classification of labeled points",
		Long: `lvlearn runs supervised classification algorithms on text datasets
of labeled points: every line holds whitespace-separated vector components
(real "1.5" or complex "0.9+0.3i") followed by the label.

Algorithms:
  • bayes - Gaussian plug-in rule (nearest centroid with bias)
  • knn   - k-nearest-neighbor majority vote
  • slp   - binary single-layer perceptron
  • mslp  - multiclass one-vs-rest single-layer perceptron`,
	}

	rootCmd.PersistentFlags().String("train", "", "training data file")
	rootCmd.PersistentFlags().String("test", "", "test data file")
	rootCmd.PersistentFlags().String("config", "", "YAML file with hyperparameters")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvlearn v%s\n", version)
		},
	})

	bayesCmd := &cobra.Command{
		Use:   "bayes",
		Short: "Classify with the Bayesian plug-in rule",
		RunE:  runBayes,
	}
	rootCmd.AddCommand(bayesCmd)

	knnCmd := &cobra.Command{
		Use:   "knn",
		Short: "Classify with k-nearest-neighbor majority vote",
		RunE:  runKNN,
	}
	knnCmd.Flags().Int("neighbors", 1, "number of nearest neighbors")
	rootCmd.AddCommand(knnCmd)

	slpCmd := &cobra.Command{
		Use:   "slp",
		Short: "Classify with the binary single-layer perceptron",
		RunE:  runSLP,
	}
	addPerceptronFlags(slpCmd)
	rootCmd.AddCommand(slpCmd)

	mslpCmd := &cobra.Command{
		Use:   "mslp",
		Short: "Classify with the multiclass one-vs-rest perceptron",
		RunE:  runMSLP,
	}
	addPerceptronFlags(mslpCmd)
	rootCmd.AddCommand(mslpCmd)

	synthCmd := &cobra.Command{
		Use:   "synth [spec.yaml]",
		Short: "Generate a dataset of Gaussian clusters from a YAML spec",
		Args:  cobra.ExactArgs(1),
		RunE:  runSynth,
	}
	synthCmd.Flags().String("out", "", "output file (default stdout)")
	rootCmd.AddCommand(synthCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPerceptronFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("rate", classify.DefaultLearningRate, "learning rate")
	cmd.Flags().Float64("threshold", classify.DefaultThreshold, "tolerated misclassified fraction")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 = time-seeded)")
}

// loadParams merges defaults, the optional --config file and explicit flags,
// in that order of increasing precedence.
func loadParams(cmd *cobra.Command) (params, error) {
	p := defaultParams()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return params{}, err
		}
		if err := yaml.Unmarshal(raw, &p); err != nil {
			return params{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if cmd.Flags().Changed("neighbors") {
		p.Neighbors, _ = cmd.Flags().GetInt("neighbors")
	}
	if cmd.Flags().Changed("rate") {
		p.LearningRate, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("threshold") {
		p.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("seed") {
		p.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	return p, nil
}

// loadSets reads the training and test files named by the persistent flags.
func loadSets(cmd *cobra.Command) (train, test []dataset.LabeledPoint[string], err error) {
	trainPath, _ := cmd.Flags().GetString("train")
	if trainPath == "" {
		return nil, nil, fmt.Errorf("no training data specified (--train)")
	}
	testPath, _ := cmd.Flags().GetString("test")
	if testPath == "" {
		return nil, nil, fmt.Errorf("no test data specified (--test)")
	}

	if train, err = dataset.Load(trainPath, dataset.StringLabel); err != nil {
		return nil, nil, err
	}
	if test, err = dataset.Load(testPath, dataset.StringLabel); err != nil {
		return nil, nil, err
	}

	return train, test, nil
}

// report prints one reporting line per classification.
func report(cmd *cobra.Command, results []classify.Classification[string]) {
	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
}

func runBayes(cmd *cobra.Command, args []string) error {
	train, test, err := loadSets(cmd)
	if err != nil {
		return err
	}

	report(cmd, classify.Bayes(train, test))

	return nil
}

func runKNN(cmd *cobra.Command, args []string) error {
	train, test, err := loadSets(cmd)
	if err != nil {
		return err
	}
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	results, err := classify.KNearest(train, test, p.Neighbors)
	if err != nil {
		return err
	}
	report(cmd, results)

	return nil
}

func runSLP(cmd *cobra.Command, args []string) error {
	train, test, err := loadSets(cmd)
	if err != nil {
		return err
	}
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	results, err := classify.Perceptron(train, test,
		classify.WithLearningRate(p.LearningRate),
		classify.WithThreshold(p.Threshold),
		classify.WithSeed(p.Seed))
	if err != nil {
		return err
	}
	report(cmd, results)

	return nil
}

func runMSLP(cmd *cobra.Command, args []string) error {
	train, test, err := loadSets(cmd)
	if err != nil {
		return err
	}
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	results, err := classify.MulticlassPerceptron(train, test,
		classify.WithLearningRate(p.LearningRate),
		classify.WithThreshold(p.Threshold),
		classify.WithSeed(p.Seed))
	if err != nil {
		return err
	}
	report(cmd, results)

	return nil
}

// newPCG builds a reproducible source for Synthesize; seed 0 defers to the
// generator's fixed default.
func newPCG(seed uint64) rand.Source {
	if seed == 0 {
		return nil
	}

	return rand.NewPCG(seed, seed)
}

// synthSpec is the YAML layout consumed by the synth subcommand.
type synthSpec struct {
	Seed     uint64 `yaml:"seed"`
	Clusters []struct {
		Center []float64 `yaml:"center"`
		Spread float64   `yaml:"spread"`
		Count  int       `yaml:"count"`
		Label  string    `yaml:"label"`
	} `yaml:"clusters"`
}

func runSynth(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var spec synthSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return fmt.Errorf("spec %s: %w", args[0], err)
	}

	clusters := make([]dataset.Cluster[string], len(spec.Clusters))
	for i, c := range spec.Clusters {
		clusters[i] = dataset.Cluster[string]{
			Center: vector.Real(c.Center...),
			Spread: c.Spread,
			Count:  c.Count,
			Label:  c.Label,
		}
	}

	points := dataset.Synthesize(newPCG(spec.Seed), clusters)

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	for _, p := range points {
		fmt.Fprintln(out, p)
	}

	return nil
}
