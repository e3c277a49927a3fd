package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
	configPath string
	file       *fileConfig
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees",
		Long:  `A tool to grow decision trees from labeled CSV data with the ID3 algorithm, store them, test them, and use them to classify new data`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "log progress to STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configPath), "config", "", "path to a YML file with default values for flags")
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if config.cancelFunc != nil {
			config.cancelFunc()
		}
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), classifyCmd(config), testCmd(config), predictCmd(config), treeCmd(config), setCmd(config), splitCmd(config))
	return rootCmd
}

// Context returns a context for the command that is cancelled on interrupt
func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
}

/*
datasetLocation takes the path, table and maximum DB connections given as
flags and returns a datasetLocation filling the unset ones with the values
from the config file.
*/
func (rcc *rootCmdConfig) datasetLocation(path, table string, maxConns int) (datasetLocation, error) {
	fc, err := rcc.File()
	if err != nil {
		return datasetLocation{}, err
	}
	if table == "" {
		table = fc.Table
	}
	if maxConns == 0 {
		maxConns = fc.MaxDBConns
	}
	return datasetLocation{path: path, table: table, maxConns: maxConns}, nil
}

// redisKeyPrefix returns the given prefix, or the one in the config file if it is empty
func (rcc *rootCmdConfig) redisKeyPrefix(prefix string) (string, error) {
	if prefix != "" {
		return prefix, nil
	}
	fc, err := rcc.File()
	if err != nil {
		return "", err
	}
	return fc.RedisPrefix, nil
}
