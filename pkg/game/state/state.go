// Package state holds the mutable state of an interactive maze session.
package state

import (
	"darkmaze/pkg/game/generator"
)

// maxMessages is how many status messages a session keeps
const maxMessages = 5

// Session holds the state of one interactive run: the current maze and
// what the user has toggled or saved so far.
type Session struct {
	Maze *generator.Maze

	Generation int // Number of mazes generated so far

	NoColor bool

	DumpFile      string // Target of the save action, empty for map.txt
	ScreenshotDir string // Directory for HTML snapshots, empty for the working directory

	Messages []string

	gen generator.GridGenerator
}

// NewSession creates a session and generates its first maze
func NewSession(gen generator.GridGenerator) (*Session, error) {
	s := &Session{
		Messages: make([]string, 0),
		gen:      gen,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the current maze with the generator's next one
func (s *Session) Regenerate() error {
	m, err := s.gen.Generate()
	if err != nil {
		return err
	}
	s.Maze = m
	s.Generation++
	return nil
}

// GeneratorName returns the name of the session's generator
func (s *Session) GeneratorName() string {
	return s.gen.Name()
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// LastMessage returns the newest message, or "" if there is none
func (s *Session) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
