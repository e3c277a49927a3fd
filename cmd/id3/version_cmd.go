package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in id3's version
	VersionMajor = 0
	// VersionMinor is the minor number in id3's version
	VersionMinor = 1
	// VersionPatch is the patch number in id3's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of id3",
		Long:  `All software has versions. This is id3's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version())
		},
	}
}

func version() string {
	return fmt.Sprintf("id3 v%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
