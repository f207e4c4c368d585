package main

import (
	"fmt"
	"os"
	"strings"

	"yadeck/export"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: deck_inspect <file.pptx>")
		os.Exit(1)
	}

	summaries, err := export.InspectDeck(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading pptx: %v\n", err)
		os.Exit(1)
	}

	for _, s := range summaries {
		fmt.Printf("\n=== Slide %d: %d shapes ===\n", s.Number, s.Shapes)
		for _, t := range s.Texts {
			fmt.Printf("  %s\n", strings.ReplaceAll(t, "\n", " | "))
		}
	}

	// Compare against a freshly built deck so a stale or hand-edited file shows up.
	deck := export.NewDesignDeckService().BuildDeck()
	if err := export.VerifyDeck(deck, summaries); err != nil {
		fmt.Printf("\nMismatch with current layout:\n%v\n", err)
		os.Exit(2)
	}
	fmt.Printf("\nOK: %d slides match the current layout\n", len(summaries))
}
