// Package main is the entry point for the HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex-api",
	Short: "Pokedex API HTTP Server",
	Long:  `Pokedex API serves a filtered, language-aware catalog view over the PokeAPI, with persisted view preferences.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
