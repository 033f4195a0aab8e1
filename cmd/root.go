package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jrce",
	Short: "A CLI tool for turning JIRA releases into cherry-pick scripts",
	Long: `jrce links the tickets of a JIRA release to the commits that implement
them, orders those commits by commit date, and generates a bash script that
cherry-picks them onto a target branch.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
