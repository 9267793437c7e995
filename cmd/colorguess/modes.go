package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorguess/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List difficulty modes",
	Long:  `Shows the difficulty modes from the active config and how many swatches each one deals.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	start := cfg.StartMode()

	fmt.Println("Difficulty modes:")
	fmt.Println()

	fmt.Printf("  %-6s  %-8s  %-8s  %s\n", "ID", "Label", "Swatches", "Accent")
	fmt.Printf("  %-6s  %-8s  %-8s  %s\n", "--", "-----", "--------", "------")

	for _, m := range config.AllModes() {
		mc := cfg.Mode(m)
		marker := ""
		if m == start {
			marker = "  (default)"
		}
		fmt.Printf("  %-6s  %-8s  %-8d  %s%s\n", m, mc.Label, mc.Swatches, mc.Accent.Hex(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'colorguess play --mode <id>' to start in a mode.")
}
