package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/renderer"
	ebitenview "darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
	"darkmaze/pkg/game/server"
	"darkmaze/pkg/game/state"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	// load translations before any usage text is printed
	langErr := i18n.Load(cfg.Lang)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		exitWithUsage(err)
	}

	log := cfg.NewLogger(os.Stderr)
	reportLanguage(langErr, log)

	if err := run(cfg, log, os.Stdout); err != nil {
		log.WithError(err).Debug("run failed")
		exitWithUsage(err)
	}
}

// reportLanguage logs a catalogue fallback from i18n.Load
func reportLanguage(err error, log logrus.FieldLogger) {
	if err == nil {
		return
	}
	log.WithError(err).WithField("language", i18n.Language()).Warn("requested language not available")
}

// exitWithUsage prints the error and the usage line, then exits non-zero
func exitWithUsage(err error) {
	fmt.Fprintln(os.Stderr, i18n.T("ERROR", err))
	fmt.Fprintln(os.Stderr, i18n.T("USAGE"))
	os.Exit(1)
}

// run executes the mode selected by cfg
func run(cfg config.Config, log *logrus.Logger, out io.Writer) error {
	if cfg.Serve {
		return serve(cfg, log)
	}

	gen, err := generator.New(cfg.Maze, generator.WithLogger(log))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"generator": gen.Name(),
		"seed":      gen.Seed(),
	}).Debug("generator ready")

	session, err := state.NewSession(gen)
	if err != nil {
		return err
	}
	session.DumpFile = cfg.DumpFile
	session.NoColor = cfg.NoColor || !terminal.StdoutIsTerminal()

	if cfg.GUI {
		return ebitenview.New(session, log).Run()
	}

	if cfg.DumpFile != "" {
		path, err := devtools.DumpMazeToFile(cfg.DumpFile, session.Maze)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, i18n.T("DUMP_WRITTEN", path))
	}

	if cfg.Interactive && terminal.IsInteractive() {
		return interactiveLoop(cfg, session, log, out)
	}
	return render(cfg, session, out)
}

// serve runs the HTTP server until it fails
func serve(cfg config.Config, log *logrus.Logger) error {
	router := server.NewRouter(server.Config{
		Addr:        cfg.HTTPAddr,
		Controllers: []server.Controller{server.NewMazeServer(cfg.Maze, log)},
		Logger:      log,
	})
	log.Info(i18n.T("SERVING", cfg.HTTPAddr))
	return router.Run()
}

// render prints the session's maze with the renderer cfg selects
func render(cfg config.Config, session *state.Session, out io.Writer) error {
	var r renderer.Renderer = renderer.Dump{}
	if !cfg.Plain {
		t := tui.New()
		t.NoColor = session.NoColor
		r = t
	}
	return r.Render(out, session.Maze)
}

// interactiveLoop renders the maze and applies key presses until the user quits
func interactiveLoop(cfg config.Config, session *state.Session, log *logrus.Logger, out io.Writer) error {
	for {
		fmt.Fprint(out, "\033[H\033[2J")
		if err := render(cfg, session, out); err != nil {
			return err
		}
		for _, msg := range session.Messages {
			fmt.Fprintln(out, msg)
		}
		fmt.Fprintf(out, "\n%s\n> ", i18n.T("PROMPT"))

		key, err := engineinput.ReadKeyRaw()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)

		action := engineinput.ActionForKey(key)
		if action == engineinput.ActionRegenerate {
			session.ClearMessages()
		}
		quit, err := gameplay.ProcessAction(session, action, log)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
