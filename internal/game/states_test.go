package game

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/miyoosquare/square/internal/config"
	"github.com/miyoosquare/square/internal/core"
	"github.com/miyoosquare/square/internal/hsm"
	"github.com/miyoosquare/square/internal/lang"
	"github.com/miyoosquare/square/internal/storage"
)

func testDeps(t *testing.T) (Deps, *bool) {
	t.Helper()

	quit := false
	deps := Deps{
		Machine:     hsm.New(),
		Config:      config.DefaultEngineConfig(),
		Runtime:     testRuntime(1),
		Logger:      log.New(io.Discard),
		Language:    lang.EN,
		RequestQuit: func() { quit = true },
	}
	return deps, &quit
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegisterBuildsHierarchy(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if m.Len() != len(StateDefs) {
		t.Fatalf("machine has %d states, expected %d", m.Len(), len(StateDefs))
	}

	gameState, ok := m.Get(GameID)
	if !ok {
		t.Fatal("GAME not registered")
	}
	if len(gameState.Children()) != 2 {
		t.Errorf("GAME has %d children, expected gameplay and small menu", len(gameState.Children()))
	}
	if gameState.Parent() == nil || !gameState.Parent().ID.Equal(MainMenuID) {
		t.Error("GAME should be a child of MAIN_MENU")
	}

	// Fresh machine boots into START with no current state yet
	if m.Current() != nil {
		t.Error("machine should have no current state after Register")
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := Register(deps); err == nil {
		t.Error("second Register on the same machine should fail on duplicate IDs")
	}
}

func TestStartAdvancesOnConfirm(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(StartID); err != nil {
		t.Fatalf("GoTo(START) failed: %v", err)
	}

	m.HandleEvent(frame(core.ActionConfirm))
	if m.CurrentName() != "MAIN_MENU" {
		t.Errorf("current = %s after confirm on splash, expected MAIN_MENU", m.CurrentName())
	}
}

func TestStartAdvancesAfterTimeout(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(StartID); err != nil {
		t.Fatalf("GoTo(START) failed: %v", err)
	}

	// Two seconds of ticks auto-advance the splash
	for i := 0; i < deps.Runtime.TickRate*2; i++ {
		m.Update()
	}
	if m.CurrentName() != "MAIN_MENU" {
		t.Errorf("current = %s after splash timeout, expected MAIN_MENU", m.CurrentName())
	}
}

func TestMainMenuPlayStartsGameplay(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(MainMenuID); err != nil {
		t.Fatalf("GoTo(MAIN_MENU) failed: %v", err)
	}

	// Cursor starts on Play
	m.HandleEvent(frame(core.ActionConfirm))
	if m.CurrentName() != "GAME" {
		t.Fatalf("current = %s after Play, expected GAME", m.CurrentName())
	}

	// GAME hands off to the gameplay level on its first update
	m.Update()
	if m.CurrentName() != "LEVEL_GAMEPLAY" {
		t.Errorf("current = %s after GAME update, expected LEVEL_GAMEPLAY", m.CurrentName())
	}
}

func TestMainMenuQuitEntersExitState(t *testing.T) {
	deps, quit := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(MainMenuID); err != nil {
		t.Fatalf("GoTo(MAIN_MENU) failed: %v", err)
	}

	// Move to the last item (Quit) and confirm
	m.HandleEvent(frame(core.ActionDown))
	m.HandleEvent(frame(core.ActionDown))
	m.HandleEvent(frame(core.ActionConfirm))

	if m.CurrentName() != "EXIT_PROGRAM" {
		t.Errorf("current = %s, expected EXIT_PROGRAM", m.CurrentName())
	}
	if !*quit {
		t.Error("entering EXIT_PROGRAM should request platform shutdown")
	}
}

func TestSmallMenuPausesAndResumes(t *testing.T) {
	deps, _ := testDeps(t)
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(GameID); err != nil {
		t.Fatalf("GoTo(GAME) failed: %v", err)
	}
	m.Update() // hand off to gameplay

	// Esc opens the small menu
	m.HandleEvent(frame(core.ActionBack))
	if m.CurrentName() != "SMALL_MENU" {
		t.Fatalf("current = %s after Back, expected SMALL_MENU", m.CurrentName())
	}

	// Gameplay is frozen while the menu is current: only the current state
	// receives updates and the menu has no update hook, so the frame must
	// not change across ticks.
	before := core.NewScreen(80, 24)
	m.Render(before)
	for i := 0; i < 30; i++ {
		m.Update()
	}
	after := core.NewScreen(80, 24)
	m.Render(after)
	if before.String() != after.String() {
		t.Error("frame changed while the small menu was current")
	}

	// Esc again resumes
	m.HandleEvent(frame(core.ActionBack))
	if m.CurrentName() != "LEVEL_GAMEPLAY" {
		t.Errorf("current = %s after resume, expected LEVEL_GAMEPLAY", m.CurrentName())
	}
}

func TestLanguageToggleInMainMenu(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	deps, _ := testDeps(t)
	deps.Store = store
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(MainMenuID); err != nil {
		t.Fatalf("GoTo(MAIN_MENU) failed: %v", err)
	}

	// Second item toggles the language and persists it
	m.HandleEvent(frame(core.ActionDown))
	m.HandleEvent(frame(core.ActionConfirm))

	saved, err := store.Setting(LanguageSetting, string(lang.EN))
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if saved != string(lang.RU) {
		t.Errorf("persisted language = %q, expected ru", saved)
	}

	// The menu now renders the RU labels
	dst := core.NewScreen(80, 24)
	m.Render(dst)
	if !containsText(dst, lang.CatalogFor(lang.RU).Title) {
		t.Error("menu did not render the RU title after the toggle")
	}
}

func TestGameplaySavesScoreWhenLeavingViaMenu(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	deps, _ := testDeps(t)
	deps.Store = store
	if err := Register(deps); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	m := deps.Machine

	if err := m.GoTo(GameID); err != nil {
		t.Fatalf("GoTo(GAME) failed: %v", err)
	}
	m.Update()

	// No score yet: leaving through the small menu saves nothing
	m.HandleEvent(frame(core.ActionBack))
	m.HandleEvent(frame(core.ActionDown))
	m.HandleEvent(frame(core.ActionDown))
	m.HandleEvent(frame(core.ActionConfirm)) // Back to menu

	if m.CurrentName() != "MAIN_MENU" {
		t.Fatalf("current = %s, expected MAIN_MENU", m.CurrentName())
	}
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("a zero-score run was saved: high = %d", high)
	}
}

// containsText reports whether the rendered text appears on any screen row.
func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
