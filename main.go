package main

import "github.com/SediDeVone/jira-release-commit-extractor/cmd"

func main() {
	cmd.Execute()
}
