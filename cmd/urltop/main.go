// Package main provides the CLI entrypoint for urltop.
//
// urltop reads text such as access or application logs, extracts the URLs
// it contains and reports the most frequent domains and paths.
//
// Usage:
//
//	urltop [-n N] [input-file [output-file]]
//	urltop history
//	urltop history show <id>
//	urltop config
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}
