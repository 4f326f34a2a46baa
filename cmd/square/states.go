package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/miyoosquare/square/internal/config"
	"github.com/miyoosquare/square/internal/game"
	"github.com/miyoosquare/square/internal/hsm"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Print the engine state tree",
	Long: `Print the state hierarchy the engine boots with, one state per line,
indented by depth.

Examples:
  square states`,
	Args: cobra.NoArgs,
	Run:  runStates,
}

func runStates(_ *cobra.Command, _ []string) {
	machine := hsm.New()
	err := game.Register(game.Deps{
		Machine: machine,
		Config:  config.DefaultEngineConfig(),
		Runtime: config.DefaultEngineConfig().Runtime(),
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering states: %v\n", err)
		os.Exit(1)
	}

	for _, s := range machine.States() {
		if s.Parent() != nil {
			continue
		}
		printState(s, 0)
	}
}

func printState(s *hsm.State, depth int) {
	fmt.Printf("%s%s  (%s)\n", strings.Repeat("  ", depth), s.Name, s.ID)
	for _, child := range s.Children() {
		printState(child, depth+1)
	}
}
