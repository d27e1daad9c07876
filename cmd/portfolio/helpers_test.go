package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/student-portfolio/internal/config"
)

// runCLI executes the root command against a fresh board in a temp dir and returns stdout and stderr
func runCLI(t *testing.T, boardFile string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	settings = config.Default()

	if boardFile == "" {
		boardFile = filepath.Join(t.TempDir(), "students.json")
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--board", boardFile}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so executions do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
