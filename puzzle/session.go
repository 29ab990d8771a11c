// Package puzzle ties a level to its beam: clicks rotate mirrors and the beam is retraced on demand.
package puzzle

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
)

// Session is one play-through of a level
type Session struct {
	level  *level.Level
	mode   level.RotationMode
	params laser.TraceParams
	logger *log.Logger

	moves []level.Point
	beam  *laser.Beam
}

type Option func(*Session)

func WithRotationMode(mode level.RotationMode) Option {
	return func(s *Session) {
		s.mode = mode
	}
}

func WithTraceParams(params laser.TraceParams) Option {
	return func(s *Session) {
		s.params = params
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a session on a private copy of l
func NewSession(l *level.Level, opts ...Option) *Session {
	s := &Session{
		level:  l.Clone(),
		mode:   level.RotateSingle,
		params: laser.DefaultTraceParams(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rotate clicks the cell at p. Rejected clicks leave the session untouched.
func (s *Session) Rotate(p level.Point) ([]level.Point, error) {
	rotated, err := s.level.Rotate(p, s.mode)
	if err != nil {
		s.logger.Debug("click rejected", "cell", p, "err", err)
		return nil, err
	}
	s.moves = append(s.moves, p)
	s.beam = nil
	s.logger.Debug("rotated", "cell", p, "mode", s.mode, "changed", len(rotated))
	return rotated, nil
}

// Beam returns the beam for the current mirror orientations
func (s *Session) Beam() laser.Beam {
	if s.beam == nil {
		beam := laser.TraceLevel(s.level, s.params)
		s.beam = &beam
		s.logger.Debug("traced", "bounces", beam.Bounces, "outcome", beam.Outcome)
	}
	return *s.beam
}

// Solved reports whether the beam leaves the grid through the finishing point
func (s *Session) Solved() bool {
	return s.Beam().Reaches(s.level.FinishingPoint())
}

// Moves lists the accepted clicks in order
func (s *Session) Moves() []level.Point {
	return append([]level.Point(nil), s.moves...)
}

func (s *Session) Level() *level.Level {
	return s.level
}

func (s *Session) Mode() level.RotationMode {
	return s.mode
}

func (s *Session) Params() laser.TraceParams {
	return s.params
}
