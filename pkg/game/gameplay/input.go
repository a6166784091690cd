// Package gameplay applies user actions to an interactive maze session.
package gameplay

import (
	"github.com/sirupsen/logrus"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/state"
)

// ProcessAction applies a high-level action to the session. It returns true
// when the user asked to quit. Save failures are reported as session
// messages; only a failed regeneration is returned as an error.
func ProcessAction(s *state.Session, action engineinput.Action, log logrus.FieldLogger) (bool, error) {
	switch action {
	case engineinput.ActionNone:
		return false, nil

	case engineinput.ActionQuit:
		return true, nil

	case engineinput.ActionRegenerate:
		if err := s.Regenerate(); err != nil {
			return false, err
		}
		log.WithFields(logrus.Fields{
			"seed":       s.Maze.Seed(),
			"generation": s.Generation,
		}).Debug("maze regenerated")
		return false, nil

	case engineinput.ActionToggleColor:
		s.NoColor = !s.NoColor
		return false, nil

	case engineinput.ActionSave:
		path, err := devtools.DumpMazeToFile(s.DumpFile, s.Maze)
		if err != nil {
			log.WithError(err).Error("map dump failed")
			s.AddMessage(i18n.T("ERROR", err))
		} else {
			s.AddMessage(i18n.T("DUMP_WRITTEN", path))
		}
		return false, nil

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(s.ScreenshotDir, s.Maze)
		if err != nil {
			log.WithError(err).Error("html snapshot failed")
			s.AddMessage(i18n.T("ERROR", err))
		} else {
			s.AddMessage(i18n.T("SCREENSHOT_WRITTEN", path))
		}
		return false, nil
	}

	return false, nil
}
