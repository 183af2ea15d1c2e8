package cmd

import (
	"fmt"
	"os"

	"github.com/n64decomp/mipsdis/cmd/disas"
	"github.com/n64decomp/mipsdis/cmd/symbrowse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mipsdis",
	Short: "A matching MIPS disassembler for N64/PS1/PSP/PS2 decompilation projects",
	Long: `mipsdis decodes MIPS machine code across the R4300, RSP, GTE, ALLEGREX
and EE dialects, pairs hi/lo immediate loads, discovers function boundaries
and migrates single-referrer rodata into the functions that use it.

This CLI is the entry point for the disassembler: "disas analyze" runs the
pipeline over a section manifest and prints a report, "symbrowse" opens
an interactive read-only browser over the result.`,
	// Uncomment the following line if your bare application
	// has an action associated with it:
	// Run: func(cmd *cobra.Command, args []string) { },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(disas.DisasCmd, symbrowse.SymbrowseCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mipsdis" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mipsdis")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
