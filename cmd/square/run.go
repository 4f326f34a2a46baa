package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/miyoosquare/square/internal/assets"
	"github.com/miyoosquare/square/internal/config"
	"github.com/miyoosquare/square/internal/game"
	"github.com/miyoosquare/square/internal/hsm"
	"github.com/miyoosquare/square/internal/lang"
	"github.com/miyoosquare/square/internal/platform/tui"
	"github.com/miyoosquare/square/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  W/A/S/D, arrows - Move
  Enter           - Confirm
  Esc             - In-game menu / back
  Q               - Quit to exit state
  Ctrl+C          - Quit immediately

Examples:
  square run
  square run --seed 42
  square run --config ./my-square.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func runRun(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "square"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size wins over the configured window size
	rc := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed

	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// A stored language choice wins over the config default
	language, _ := lang.Parse(cfg.Language)
	if store != nil {
		if saved, settingErr := store.Setting(game.LanguageSetting, string(language)); settingErr == nil {
			language, _ = lang.Parse(saved)
		}
	}

	var library *assets.Library
	if cfg.Assets.Manifest != "" {
		library, err = assets.LoadLibrary(cfg.Assets.Manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load assets: %v\n", err)
			library = nil
		}
	}
	if library != nil {
		defer library.Close()
	}

	machine := hsm.New()
	model := tui.NewModel(machine, rc, logger)

	err = game.Register(game.Deps{
		Machine:     machine,
		Config:      cfg,
		Runtime:     model.Config(),
		Store:       store,
		Library:     library,
		Logger:      logger,
		Language:    language,
		RequestQuit: model.RequestQuit(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering states: %v\n", err)
		os.Exit(1)
	}
	if err := machine.GoTo(game.StartID); err != nil {
		fmt.Fprintf(os.Stderr, "Error entering boot state: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
