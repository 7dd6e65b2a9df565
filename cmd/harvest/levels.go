package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/farmtofeast/harvest-hustle/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level with its view, dish, and ingredient requirements.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	catalog, err := level.Load(flagLevelsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level catalog (%d levels):\n", catalog.Count())
	fmt.Println()

	for i := 0; i < catalog.Count(); i++ {
		def, err := catalog.Get(i)
		if err != nil {
			continue
		}

		ings := make([]string, 0, len(def.Ingredients))
		for _, ing := range def.Ingredients {
			ings = append(ings, fmt.Sprintf("%sx%d (%s)", ing.Kind, ing.Need, ing.Method))
		}

		fmt.Printf("  L%-2d %-14s %-8s %s\n", i+1, def.Name, def.View, def.Dish)
		fmt.Printf("      %s\n", strings.Join(ings, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'harvest play' to start.")
}
