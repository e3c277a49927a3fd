package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pbanos/id3/dataset"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*rootCmdConfig
	setInput         string
	setOutput        string
	splitOutput      string
	table            string
	splitProbability int
	seed             int64
	maxDBConns       int
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to keep part of a labeled set to test trees grown from the rest`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			inputLoc, err := config.datasetLocation(config.setInput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			outputLoc, err := config.datasetLocation(config.setOutput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			splitLoc, err := config.datasetLocation(config.splitOutput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			s, err := readDataset(config.Context(), config.logger, inputLoc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading input set: %v\n", err)
				os.Exit(3)
			}
			output, split := s.Split(config.splitter())
			err = writeDataset(config.Context(), config.logger, outputLoc, output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(4)
			}
			err = writeDataset(config.Context(), config.logger, splitLoc, split)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing split set: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", s.Count(), output.Count(), split.Count())
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter to read the set from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path or URL to dump the output set to (defaults to STDOUT, as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path or URL to dump the split set to (required)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", "name of the table to read from and write to on SQL inputs and outputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the assignment of samples to sets (defaults to 0: a time based seed)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

func (scc *splitCmdConfig) splitter() func(int, dataset.Row) bool {
	seed := scc.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	randomizer := rand.New(rand.NewSource(seed))
	return func(int, dataset.Row) bool {
		return 100*randomizer.Float32() <= float32(scc.splitProbability)
	}
}
