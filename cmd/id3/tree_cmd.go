package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	output      string
	format      string
	redisPrefix string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show or convert a tree",
		Long:  `Show a tree as a text outline or a Graphviz DOT graph, or convert it between JSON, YAML and redis`,
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
			t, err := loadTree(config.Context(), config.logger, config.treeInput, prefix)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			nodes, leaves := tree.Size(t)
			config.Logf("Tree has %d nodes, %d leaves and depth %d", nodes, leaves, tree.Depth(t))
			format, err := treeFormat(config.format)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			err = storeTree(config.Context(), config.logger, config.output, format, prefix, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON (.json) or YAML (.yml, .yaml) file, or a redis URL with an id parameter, from which the tree will be read (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or redis URL to write the tree to, with its format chosen by extension (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", formatText, "format for the tree when written to STDOUT: text, dot, json or yaml")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "", "prefix for the keys of trees stored on redis (defaults to the config redis-prefix or id3:tree)")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
