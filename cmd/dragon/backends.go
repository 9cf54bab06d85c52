package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-runner/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List storage backends",
	Long:  `Shows every storage backend the high score can be kept in.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(_ *cobra.Command, _ []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No storage backends available.")
		return
	}

	fmt.Println("Storage backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Pick one with 'dragon --storage <name> play'.")
}
