package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"checkers-local/board"
	"checkers-local/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	variant board.Variant
	rules   board.RuleSet
}

// NewGameSetup creates a new game setup form preset to defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		variant:  defaults.Variant,
		rules:    defaults.Rules,
	}

	variants := make([]string, len(board.Variants))
	initial := 0
	for i, v := range board.Variants {
		variants[i] = fmt.Sprintf("%s (%dx%d)", v.Title(), v.Size, v.Size)
		if v == defaults.Variant {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Game", variants, initial, func(option string, index int) {
		if index >= 0 && index < len(board.Variants) {
			setup.variant = board.Variants[index]
		}
	})

	form.AddCheckbox("Remove jumped pieces", defaults.Rules.CaptureJumped, func(checked bool) {
		setup.rules.CaptureJumped = checked
	})

	form.AddCheckbox("Crown kings", defaults.Rules.PromoteKings, func(checked bool) {
		setup.rules.PromoteKings = checked
	})

	form.AddButton("New Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently chosen in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{Variant: s.variant, Rules: s.rules}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}
