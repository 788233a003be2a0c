package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OOAAHH/RNAView/internal/regress"
)

var diffCmd = &cobra.Command{
	Use:   "diff [record a] [record b]",
	Short: "Byte-exact diff between two emitted text records (§6.1 strict gate)",
	Args:  cobra.ExactArgs(2),
	Run:   runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) {
	a, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("reading %s: %v", args[0], err)
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", args[1], err)
	}

	identical, diffs := regress.CompareText(string(a), string(b))
	if identical {
		fmt.Println("identical")
		return
	}
	fmt.Print(regress.FormatDiff(diffs))
	os.Exit(1)
}
