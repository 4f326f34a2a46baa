package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/miyoosquare/square/internal/assets"
	"github.com/miyoosquare/square/internal/config"
	"github.com/miyoosquare/square/internal/core"
	"github.com/miyoosquare/square/internal/hsm"
	"github.com/miyoosquare/square/internal/lang"
	"github.com/miyoosquare/square/internal/storage"
)

// LanguageSetting is the settings key the language choice is stored under.
const LanguageSetting = "language"

// Deps carries everything the state hooks close over. Store and Library
// are optional: a nil store skips persistence, a nil library falls back to
// text-only rendering.
type Deps struct {
	Machine  *hsm.Machine
	Config   config.EngineConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store
	Library  *assets.Library
	Logger   *log.Logger
	Language lang.Language

	// RequestQuit asks the hosting platform to stop the frame loop. Set
	// by the platform before Register.
	RequestQuit func()
}

// world is the mutable context the hooks share: the live language
// selection, the gameplay session and the menu cursors.
type world struct {
	deps Deps
	lang lang.Language

	session   *Session
	mainMenu  *menu
	smallMenu *menu

	splashTicks int
	highScore   int
	scoreSaved  bool
}

func (w *world) catalog() lang.Catalog {
	return lang.CatalogFor(w.lang)
}

// setLanguage switches the live language and persists the choice.
func (w *world) setLanguage(l lang.Language) {
	w.lang = l
	if w.deps.Store == nil {
		return
	}
	if err := w.deps.Store.SetSetting(LanguageSetting, string(l)); err != nil {
		w.deps.Logger.Warn("could not persist language", "error", err)
	}
}

// Register builds the full state tree on the machine and wires every hook.
// The machine has no current state afterwards; the caller transitions to
// StartID to boot.
func Register(deps Deps) error {
	w := &world{
		deps:      deps,
		lang:      deps.Language,
		session:   NewSession(),
		mainMenu:  newMenu(3),
		smallMenu: newMenu(3),
	}

	for _, def := range StateDefs {
		s, err := deps.Machine.Define(def.ID, def.Name)
		if err != nil {
			return fmt.Errorf("game: registering %s: %w", def.Name, err)
		}

		switch {
		case def.ID.Equal(StartID):
			w.wireStart(s)
		case def.ID.Equal(MainMenuID):
			w.wireMainMenu(s)
		case def.ID.Equal(GameID):
			w.wireGame(s)
		case def.ID.Equal(LevelGameplayID):
			w.wireLevelGameplay(s)
		case def.ID.Equal(SmallMenuID):
			w.wireSmallMenu(s)
		case def.ID.Equal(ExitProgramID):
			w.wireExitProgram(s)
		}
	}

	return nil
}

// wireStart sets up the boot splash: shows the logo, advances to the main
// menu on Enter or automatically after a short delay.
func (w *world) wireStart(s *hsm.State) {
	deps := w.deps

	s.OnEnter = func() {
		deps.Logger.Info("entering", "state", s.Name)
		w.splashTicks = 0
	}
	s.HandleEvent = func(in core.InputFrame) {
		if in.Has(core.ActionConfirm) {
			deps.Machine.GoTo(MainMenuID) //nolint:errcheck
		}
	}
	s.Update = func() {
		w.splashTicks++
		if w.splashTicks >= deps.Runtime.TickRate*2 {
			deps.Machine.GoTo(MainMenuID) //nolint:errcheck
		}
	}
	s.Render = func(dst *core.Screen) {
		dst.Clear()
		cat := w.catalog()
		midY := dst.Height() / 2

		if deps.Library != nil {
			if logo, ok := deps.Library.Image("logo"); ok {
				logo.Draw(dst, (dst.Width()-logo.Width())/2, midY-logo.Height()-1, core.ColorRed)
			}
		}
		dst.DrawTextCentered(midY, cat.Title, core.ColorBrightWhite)
		dst.DrawTextCentered(midY+2, cat.PressEnter, core.ColorGray)
	}
}

// wireMainMenu sets up the main menu: play, high scores line, quit.
func (w *world) wireMainMenu(s *hsm.State) {
	deps := w.deps

	s.OnEnter = func() {
		deps.Logger.Info("entering", "state", s.Name)
		w.mainMenu.reset()
		w.highScore = 0
		if deps.Store != nil {
			if high, err := deps.Store.HighScore(); err == nil {
				w.highScore = high
			}
		}
	}
	s.OnExit = func() {
		deps.Logger.Debug("exiting", "state", s.Name)
	}
	s.HandleEvent = func(in core.InputFrame) {
		switch {
		case in.Has(core.ActionUp):
			w.mainMenu.up()
		case in.Has(core.ActionDown):
			w.mainMenu.down()
		case in.Has(core.ActionConfirm):
			switch w.mainMenu.cursor {
			case 0:
				deps.Machine.GoTo(GameID) //nolint:errcheck
			case 1:
				w.setLanguage(w.lang.Next())
			case 2:
				deps.Machine.GoTo(ExitProgramID) //nolint:errcheck
			}
		case in.Has(core.ActionQuit):
			deps.Machine.GoTo(ExitProgramID) //nolint:errcheck
		}
	}
	s.Render = func(dst *core.Screen) {
		dst.Clear()
		cat := w.catalog()

		dst.DrawTextCentered(2, cat.Title, core.ColorBrightWhite)
		if w.highScore > 0 {
			dst.DrawTextCentered(4, fmt.Sprintf("%s: %d", cat.Scores, w.highScore), core.ColorYellow)
		}
		w.mainMenu.render(dst, 7, []string{cat.Play, cat.Language, cat.Quit})
	}
}

// wireGame sets up the session wrapper. Entering GAME starts a fresh run;
// the first update hands off to the gameplay level. The state exists so
// the gameplay level and the in-game menu share one parent in the tree.
func (w *world) wireGame(s *hsm.State) {
	deps := w.deps

	s.OnEnter = func() {
		deps.Logger.Info("entering", "state", s.Name, "seed", deps.Runtime.Seed)
		w.session.Reset(deps.Runtime, deps.Config.Gameplay)
		w.scoreSaved = false
	}
	s.Update = func() {
		deps.Machine.GoTo(LevelGameplayID) //nolint:errcheck
	}
}

// wireLevelGameplay sets up the active gameplay state.
func (w *world) wireLevelGameplay(s *hsm.State) {
	deps := w.deps

	s.HandleEvent = func(in core.InputFrame) {
		if in.Has(core.ActionBack) {
			deps.Machine.GoTo(SmallMenuID) //nolint:errcheck
			return
		}
		w.session.Apply(in)
	}
	s.Update = func() {
		w.session.Step()
		if w.session.Complete() {
			w.saveScore()
			deps.Machine.GoTo(MainMenuID) //nolint:errcheck
		}
	}
	s.Render = func(dst *core.Screen) {
		w.session.Render(dst, w.catalog())
	}
}

// wireSmallMenu sets up the in-game menu: resume, language toggle, back to
// the main menu. Gameplay is frozen while this state is current because
// only the current state receives updates.
func (w *world) wireSmallMenu(s *hsm.State) {
	deps := w.deps

	s.OnEnter = func() {
		w.smallMenu.reset()
	}
	s.HandleEvent = func(in core.InputFrame) {
		switch {
		case in.Has(core.ActionUp):
			w.smallMenu.up()
		case in.Has(core.ActionDown):
			w.smallMenu.down()
		case in.Has(core.ActionBack):
			deps.Machine.GoTo(LevelGameplayID) //nolint:errcheck
		case in.Has(core.ActionConfirm):
			switch w.smallMenu.cursor {
			case 0:
				deps.Machine.GoTo(LevelGameplayID) //nolint:errcheck
			case 1:
				w.setLanguage(w.lang.Next())
			case 2:
				w.saveScore()
				deps.Machine.GoTo(MainMenuID) //nolint:errcheck
			}
		}
	}
	s.Render = func(dst *core.Screen) {
		// The frozen field stays visible behind the menu box.
		cat := w.catalog()
		w.session.Render(dst, cat)

		box := core.NewRect(dst.Width()/2-14, dst.Height()/2-4, 28, 9)
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, core.ColorBrightWhite)
		dst.DrawTextCentered(box.Y+1, cat.Paused, core.ColorBrightYellow)
		w.smallMenu.render(dst, box.Y+3, []string{cat.Resume, cat.Language, cat.BackToMenu})
	}
}

// wireExitProgram sets up the shutdown state: entering it asks the
// platform to stop the loop.
func (w *world) wireExitProgram(s *hsm.State) {
	deps := w.deps

	s.OnEnter = func() {
		deps.Logger.Info("entering", "state", s.Name)
		if deps.RequestQuit != nil {
			deps.RequestQuit()
		}
	}
}

// saveScore persists the current run once, if anything was scored.
func (w *world) saveScore() {
	if w.deps.Store == nil || w.scoreSaved || w.session.Score() == 0 {
		return
	}
	if _, err := w.deps.Store.SaveScore(w.session.Score()); err != nil {
		w.deps.Logger.Warn("could not save score", "error", err)
		return
	}
	w.scoreSaved = true
}
