package main

import (
	"io"
	"os"

	"github.com/google/uuid"

	"yadeck/config"
	"yadeck/export"
	"yadeck/logger"
)

func main() {
	if err := runMain(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func runMain() error {
	cfg, err := config.Load()
	if err != nil {
		return WrapOperationError("load config", err)
	}

	log := logger.NewLogger(os.Stderr, cfg.Debug)
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			return WrapOperationError("init log", err)
		}
	}
	defer log.Close()
	log.SetRunID(uuid.NewString())

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error("deck generation failed", err)
		return err
	}
	return nil
}

// run builds the deck, saves it, checks the saved file and writes whatever
// companion files cfg asks for.
func run(cfg config.Config, log *logger.Logger, stdout io.Writer) error {
	svc := export.NewDesignDeckService()
	deck := svc.BuildDeck()
	log.Log("deck built", "slides", len(deck.Slides()), "shapes", deck.ShapeCounts())

	if err := svc.SaveDeck(deck, cfg.Output); err != nil {
		return WrapOperationError("save deck", err)
	}

	summaries, err := export.InspectDeck(cfg.Output)
	if err != nil {
		return WrapOperationError("inspect deck", err)
	}
	if err := export.VerifyDeck(deck, summaries); err != nil {
		return WrapOperationError("verify deck", err)
	}
	for _, s := range summaries {
		log.Debug("slide", "n", s.Number, "shapes", s.Shapes, "texts", len(s.Texts))
	}
	printSaved(stdout, "", cfg.Output)

	if cfg.HandoutPath != "" {
		data, err := export.NewHandoutService().WithFont(cfg.HandoutFont).ExportHandoutPDF(deck)
		if err != nil {
			return WrapOperationError("export handout", err)
		}
		if err := writeCompanion(cfg.HandoutPath, data); err != nil {
			return err
		}
		printSaved(stdout, "handout", cfg.HandoutPath)
	}

	if cfg.InventoryPath != "" {
		data, err := export.NewInventoryService().ExportInventoryToExcel(deck)
		if err != nil {
			return WrapOperationError("export inventory", err)
		}
		if err := writeCompanion(cfg.InventoryPath, data); err != nil {
			return err
		}
		printSaved(stdout, "inventory", cfg.InventoryPath)
	}

	if cfg.OutlinePath != "" {
		data, err := export.NewOutlineService().ExportOutlineToWord(deck)
		if err != nil {
			return WrapOperationError("export outline", err)
		}
		if err := writeCompanion(cfg.OutlinePath, data); err != nil {
			return err
		}
		printSaved(stdout, "outline", cfg.OutlinePath)
	}

	log.Log("done", "output", cfg.Output)
	return nil
}

func writeCompanion(path string, data []byte) error {
	return WrapOperationError("write "+path, export.WriteFile(path, data))
}
