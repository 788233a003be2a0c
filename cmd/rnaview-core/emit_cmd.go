package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OOAAHH/RNAView/emit"
	"github.com/OOAAHH/RNAView/pairing"
)

var emitCmd = &cobra.Command{
	Use:   "emit [json record file]",
	Short: "Re-render a schema v1 JSON record as a text record",
	Args:  cobra.ExactArgs(1),
	Run:   runEmit,
}

func init() {
	emitCmd.Flags().Bool("legacy", false, "prepend the BPRS compatibility preamble")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) {
	body, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("reading %s: %v", args[0], err)
	}

	var rec emit.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		log.Fatalf("parsing %s as a schema v1 record: %v", args[0], err)
	}

	result := emit.ToResult(rec)

	if legacy, _ := cmd.Flags().GetBool("legacy"); legacy {
		fmt.Print(emit.WriteLegacyPreamble(rec.Source.Path, pairing.Default))
	}
	fmt.Print(emit.WriteText(result))
}
