package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any
// subcommands, following jjti-repp's cmd/root.go split between a bare
// root and Cobra subcommands added in their own files' init().
var rootCmd = &cobra.Command{
	Use:     "rnaview-core",
	Short:   "Detect and classify base pairs in an RNA/DNA tertiary structure",
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "profile", "", "options profile YAML file (see pdbio.LoadProfile)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("reading profile %s: %v", cfgFile, err)
		}
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
