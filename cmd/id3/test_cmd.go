package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	dataInput   string
	table       string
	redisPrefix string
	maxDBConns  int
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a labeled test set`,
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
			loc, err := config.datasetLocation(config.dataInput, config.table, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.Context(), config.logger, config.treeInput, prefix)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			testingSet, err := readDataset(config.Context(), config.logger, loc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testset with %d samples...", testingSet.Count())
			successRate, errorCount := tree.Test(t, testingSet)
			config.Logf("Done")
			fmt.Printf("%s success rate, failed to make a prediction for %s samples\n", green(fmt.Sprintf("%f", successRate)), red(errorCount))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON (.json) or YAML (.yml, .yaml) file, or a redis URL with an id parameter, from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter with labeled data to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "", "name of the table or collection with the data on SQL inputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "", "prefix for the keys of trees stored on redis (defaults to the config redis-prefix or id3:tree)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
