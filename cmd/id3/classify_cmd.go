package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	dataInput   string
	output      string
	column      string
	table       string
	redisPrefix string
	maxDBConns  int
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a set of data with a tree",
		Long:  `Classify every row of a set of data with a tree and write it as CSV with an additional column holding the assigned class, left empty for rows that could not be classified.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			prefix, err := config.redisKeyPrefix(config.redisPrefix)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			column, err := config.classificationColumn()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.Context(), config.logger, config.treeInput, prefix)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			loc, err := config.datasetLocation(config.dataInput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			s, err := readDataset(config.Context(), config.logger, loc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading set to classify: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Classifying %d samples...", s.Count())
			results := tree.ClassifyDataset(t, s)
			config.Logf("Done")
			err = config.writeResults(s, results, column)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON (.json) or YAML (.yml, .yaml) file, or a redis URL with an id parameter, from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter with data to classify (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to the CSV file to write the classified data to (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.column), "column", "c", "", "name of the column holding the assigned class (defaults to the config classification-column or classification)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", "name of the table or collection with the data on SQL inputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "", "prefix for the keys of trees stored on redis (defaults to the config redis-prefix or id3:tree)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (ccc *classifyCmdConfig) classificationColumn() (string, error) {
	if ccc.column != "" {
		return ccc.column, nil
	}
	fc, err := ccc.File()
	if err != nil {
		return "", err
	}
	if fc.ClassificationColumn != "" {
		return fc.ClassificationColumn, nil
	}
	return csv.DefaultClassificationColumn, nil
}

func (ccc *classifyCmdConfig) writeResults(s *dataset.Dataset, results []tree.Result, column string) error {
	if ccc.output == "" {
		ccc.Logf("Using STDOUT to dump classified set...")
		return csv.WriteClassified(os.Stdout, s, results, column)
	}
	ccc.Logf("Creating %s to dump classified set...", ccc.output)
	f, err := os.Create(ccc.output)
	if err != nil {
		return err
	}
	err = csv.WriteClassified(f, s, results, column)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
