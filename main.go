// checkers-local is a terminal application to play checkers and gekitai
// against another person on the same machine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"checkers-local/board"
	"checkers-local/config"
	"checkers-local/engine"
	"checkers-local/engine/local"
	"checkers-local/logging"
	"checkers-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagVariant    = flag.String("variant", "", "Game to play (checkers, gekitai or gekitai-classic)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagNoCapture  = flag.Bool("no-capture", false, "Leave jumped pieces on the board")
	flagNoPromote  = flag.Bool("no-promote", false, "Never crown kings")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.CheckerBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var controller *local.Controller
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("checkers-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	logger, closer := openLog()
	defer closer.Close()

	gameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(2)
	}
	quickStart := *flagQuickStart || *flagVariant != "" || *flagNoCapture || *flagNoPromote || *flagFocus

	controller = local.NewController(gameCfg, logger)

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● checkers ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewCheckerBoard(controller, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyEnter:
			gameBoard.ClickCursor()
		case tcell.KeyEsc:
			gameBoard.ResetCursor()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(0, -1)
			case 'j':
				gameBoard.MoveCursor(1, 0)
			case 'k':
				gameBoard.MoveCursor(-1, 0)
			case 'l':
				gameBoard.MoveCursor(0, 1)
			case ' ':
				gameBoard.ClickCursor()
			case 'n':
				controller.NewGame()
			case 'r':
				controller.Resign()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			case 'q':
				leaveGame()
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		gameCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
		}
	}

	logger.WithField("version", Version).Info("checkers-local started")
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.WithError(err).Error("application stopped")
		panic(err)
	}
}

// openLog opens the log file. A log that cannot be opened is not fatal,
// the game runs without one.
func openLog() (*log.Logger, io.Closer) {
	path, err := cfg.LogPath()
	if err == nil {
		var logger *log.Logger
		var closer io.Closer
		if logger, closer, err = logging.Init(path, cfg.Log.Level); err == nil {
			return logger, closer
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: logging disabled: %s\n", err)
	return logging.Discard(), io.NopCloser(nil)
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	// refused while a game runs, NewGame then reports it in the status line
	controller.SetConfig(gameCfg)
	controller.NewGame()
	gameBoard.ResetCursor()
	if gameBoard.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
	rootPage.SwitchToPage("gameview")
}

// leaveGame returns to the setup screen, asking to resign a running game first.
func leaveGame() {
	if !controller.IsGameInProgress() {
		rootPage.SwitchToPage("setup")
		return
	}
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s to move.\nResign and return to the menu?", controller.CurrentPlayer())).
		AddButtons([]string{"Resign", "Keep playing"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("confirm")
			if buttonLabel == "Resign" {
				controller.Resign()
				rootPage.SwitchToPage("setup")
				return
			}
			app.SetFocus(gameBoard.Box)
		})
	rootPage.AddPage("confirm", modal, true, true)
}

// buildGameConfigFromFlags creates a GameConfig from the config file and command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := engine.GameConfig{
		Variant: cfg.Variant(),
		Rules:   cfg.Game.RuleSet,
	}

	if *flagVariant != "" {
		v, err := board.ParseVariant(*flagVariant)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.Variant = v
	}
	if *flagNoCapture {
		gameCfg.Rules.CaptureJumped = false
	}
	if *flagNoPromote {
		gameCfg.Rules.PromoteKings = false
	}
	return gameCfg, nil
}
