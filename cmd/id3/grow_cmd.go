package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput   string
	output      string
	format      string
	table       string
	redisPrefix string
	minimumGain float64
	maxDBConns  int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of labeled data, whose last column holds the class to predict and whose first column identifies each row.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pruner, err := config.pruner(cmd.Flags().Changed("minimum-gain"))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			loc, err := config.datasetLocation(config.dataInput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := readDataset(config.Context(), config.logger, loc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", trainingSet.Count(), len(trainingSet.FeatureColumns()), trainingSet.LabelName())
			b := &id3.Builder{Pruner: pruner, Logger: config.logger}
			t, err := b.Build(config.Context(), trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			format, err := config.outputFormat()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			prefix, err := config.redisKeyPrefix(config.redisPrefix)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			err = storeTree(config.Context(), config.logger, config.output, format, prefix, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a JSON (.json) or YAML (.yml, .yaml) file, or redis URL with an optional id parameter, to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "", "format for the tree when written to STDOUT: json, yaml, dot or text (defaults to the config output-format or json)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", "name of the table or collection with the data on SQL inputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "", "prefix for the keys of trees stored on redis (defaults to the config redis-prefix or id3:tree)")
	cmd.PersistentFlags().Float64VarP(&(config.minimumGain), "minimum-gain", "g", id3.DefaultMinimumGain, "information gain a feature must exceed to split the data on it")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.minimumGain < 0 {
		return fmt.Errorf("minimum-gain must not be negative, got %v", gcc.minimumGain)
	}
	if gcc.format != "" {
		if _, err := treeFormat(gcc.format); err != nil {
			return err
		}
	}
	return nil
}

func (gcc *growCmdConfig) pruner(flagSet bool) (id3.Pruner, error) {
	if flagSet {
		return id3.FixedInformationGainPruner(gcc.minimumGain), nil
	}
	fc, err := gcc.File()
	if err != nil {
		return nil, err
	}
	return id3.FixedInformationGainPruner(*fc.MinimumGain), nil
}

func (gcc *growCmdConfig) outputFormat() (string, error) {
	if gcc.format != "" {
		return treeFormat(gcc.format)
	}
	fc, err := gcc.File()
	if err != nil {
		return "", err
	}
	return treeFormat(fc.OutputFormat)
}
