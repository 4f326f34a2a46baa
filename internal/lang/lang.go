// Package lang holds the UI language selection. The language is an explicit
// value carried in the engine configuration and threaded through state
// registration - there is no process-wide mutable singleton. Persisting the
// choice across runs is the storage layer's job.
package lang

import "fmt"

// Language identifies a supported UI language.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
)

// Default is used when no language is configured.
const Default = EN

// All lists the supported languages in display order.
var All = []Language{EN, RU}

// Parse validates a language code. Unknown codes return an error and the
// default language, so callers can fall back without extra branching.
func Parse(code string) (Language, error) {
	switch Language(code) {
	case EN:
		return EN, nil
	case RU:
		return RU, nil
	default:
		return Default, fmt.Errorf("lang: unsupported language %q", code)
	}
}

// Next cycles to the following language, wrapping around. Used by the
// language toggle in the in-game menu.
func (l Language) Next() Language {
	for i, cur := range All {
		if cur == l {
			return All[(i+1)%len(All)]
		}
	}
	return Default
}

// Catalog is the set of translated UI labels the menu states draw.
type Catalog struct {
	Title      string
	Play       string
	Scores     string
	Quit       string
	Resume     string
	BackToMenu string
	Language   string
	Score      string
	Paused     string
	PressEnter string
}

var catalogs = map[Language]Catalog{
	EN: {
		Title:      "S Q U A R E",
		Play:       "Play",
		Scores:     "High scores",
		Quit:       "Quit",
		Resume:     "Resume",
		BackToMenu: "Back to menu",
		Language:   "Language: English",
		Score:      "Score",
		Paused:     "Paused",
		PressEnter: "Press Enter",
	},
	RU: {
		Title:      "К В А Д Р А Т",
		Play:       "Играть",
		Scores:     "Рекорды",
		Quit:       "Выход",
		Resume:     "Продолжить",
		BackToMenu: "В главное меню",
		Language:   "Язык: Русский",
		Score:      "Счёт",
		Paused:     "Пауза",
		PressEnter: "Нажмите Enter",
	},
}

// CatalogFor returns the label catalog for a language, falling back to the
// default language for unknown values.
func CatalogFor(l Language) Catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}
	return catalogs[Default]
}
