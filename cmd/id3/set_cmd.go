package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput    string
	setOutput   string
	inputTable  string
	outputTable string
	maxDBConns  int
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Convert sets of data between CSV files, SQLite3 files, PostgreSQL tables and MongoDB collections`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			inputLoc, err := config.datasetLocation(config.setInput, config.inputTable, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			outputLoc, err := config.datasetLocation(config.setOutput, config.outputTable, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			s, err := readDataset(config.Context(), config.logger, inputLoc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading set: %v\n", err)
				os.Exit(3)
			}
			config.Logf("Read set with %d samples", s.Count())
			err = writeDataset(config.Context(), config.logger, outputLoc, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing set: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter to read the set from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB URL with a collection parameter to write the set to (defaults to STDOUT, as CSV)")
	cmd.PersistentFlags().StringVar(&(config.inputTable), "input-table", "", "name of the table with the set on SQL inputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().StringVar(&(config.outputTable), "output-table", "", "name of the table to create with the set on SQL outputs (defaults to the config table or dataset)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.setInput != "" && scc.setInput == scc.setOutput {
		return fmt.Errorf("input and output must differ")
	}
	return nil
}
