package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput   string
	redisPrefix string
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class for a sample answering questions",
		Long:  `Use the loaded tree to predict the class for a sample answering a reduced set of questions about its features`,
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
			sample := inputsample.New(os.Stdin, stdoutFeatureValueRequester{}, tree.FeatureValues(t))
			label, err := tree.Classify(config.Context(), t, sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted class is %s\n", green(label))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON (.json) or YAML (.yml, .yaml) file, or a redis URL with an id parameter, from which the tree will be read (required)")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "", "prefix for the keys of trees stored on redis (defaults to the config redis-prefix or id3:tree)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (stdoutFeatureValueRequester) RequestValueFor(feature string, validValues []string) error {
	if len(validValues) == 0 {
		fmt.Printf("Please provide the sample's %s:\n", cyan(feature))
		return nil
	}
	fmt.Printf("Please provide the sample's %s:\n(valid values are %v)\n", cyan(feature), validValues)
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(feature, value string, validValues []string) error {
	fmt.Printf("%s is not a valid value for the sample's %s. Please provide one of %v.\n", red(value), cyan(feature), validValues)
	return nil
}
