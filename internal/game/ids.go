// Package game defines the engine's state tree: the hierarchical IDs, the
// lifecycle hooks for every screen and the demo gameplay they drive.
package game

import "github.com/miyoosquare/square/internal/hsm"

// Hierarchical identifiers for all game states. The ID structure encodes
// the tree: GAME {1,1} is a child of MAIN_MENU {1}, the gameplay level and
// the in-game menu sit under GAME.
var (
	StartID         = hsm.ID(0)       // Boot splash
	MainMenuID      = hsm.ID(1)       // Main menu
	GameID          = hsm.ID(1, 1)    // Top-level game state
	LevelGameplayID = hsm.ID(1, 1, 1) // Active gameplay
	SmallMenuID     = hsm.ID(1, 1, 2) // In-game pause menu
	ExitProgramID   = hsm.ID(2)       // Shutdown state
)

// StateDef pairs an identifier with its registered name.
type StateDef struct {
	ID   hsm.StateID
	Name string
}

// StateDefs lists every state in registration order.
var StateDefs = []StateDef{
	{StartID, "START"},
	{MainMenuID, "MAIN_MENU"},
	{GameID, "GAME"},
	{LevelGameplayID, "LEVEL_GAMEPLAY"},
	{SmallMenuID, "SMALL_MENU"},
	{ExitProgramID, "EXIT_PROGRAM"},
}
