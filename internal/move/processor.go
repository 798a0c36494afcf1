// Package move applies a single move identifier to the persisted walker
// position: load, adjust, re-render, save.
package move

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/vinser/issuewalk/internal/state"
)

// Store loads and saves the walker position.
type Store interface {
	Load() (state.Position, error)
	Save(state.Position) error
}

// Renderer regenerates an artifact from a position.
type Renderer interface {
	Render(ctx context.Context, pos state.Position) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, pos state.Position) error

func (f RendererFunc) Render(ctx context.Context, pos state.Position) error {
	return f(ctx, pos)
}

// Stager is a Renderer that can prepare its artifact without publishing it.
// The returned commit writes what Stage prepared.
type Stager interface {
	Renderer
	Stage(ctx context.Context, pos state.Position) (commit func() error, err error)
}

// Renderers runs each renderer in order and stops at the first error.
// Stagers are committed only after every renderer has succeeded, so a late
// failure leaves their artifacts untouched.
type Renderers []Renderer

func (rs Renderers) Render(ctx context.Context, pos state.Position) error {
	var commits []func() error
	for _, r := range rs {
		if s, ok := r.(Stager); ok {
			commit, err := s.Stage(ctx, pos)
			if err != nil {
				return err
			}
			commits = append(commits, commit)
			continue
		}
		if err := r.Render(ctx, pos); err != nil {
			return err
		}
	}
	for _, commit := range commits {
		if err := commit(); err != nil {
			return err
		}
	}
	return nil
}

// InputError is returned in strict mode for an empty or unknown move.
type InputError struct {
	Move string
}

func (e *InputError) Error() string {
	if e.Move == "" {
		return "move: no move identifier given"
	}
	return "move: unrecognized move " + strconv.Quote(e.Move)
}

// Processor runs one read-modify-write cycle per call.
type Processor struct {
	store    Store
	renderer Renderer
	logger   zerolog.Logger
	strict   bool
}

type Option func(*Processor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// WithStrict makes unknown moves fail with InputError instead of being ignored.
func WithStrict(strict bool) Option {
	return func(p *Processor) { p.strict = strict }
}

func NewProcessor(store Store, renderer Renderer, opts ...Option) *Processor {
	p := &Processor{
		store:    store,
		renderer: renderer,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process loads the position, applies move, renders and saves. Rendering
// and saving run even when the move changes nothing. Any failure aborts
// the remaining steps.
func (p *Processor) Process(ctx context.Context, move string) (state.Position, error) {
	dir, known := Parse(move)
	if !known && p.strict {
		return state.Position{}, &InputError{Move: move}
	}

	pos, err := p.store.Load()
	if err != nil {
		return state.Position{}, err
	}
	log := p.logger.With().Str("move", move).Logger()
	log.Debug().Int("x", pos.X).Int("y", pos.Y).Msg("position loaded")

	if !dir.CanStep(pos) {
		return pos, eris.Wrapf(ErrOutOfRange, "%s from %s", move, pos)
	}
	next, changed := Apply(pos, move)
	if !known {
		log.Warn().Msg("unrecognized move, position unchanged")
	}

	if err := ctx.Err(); err != nil {
		return pos, eris.Wrap(err, "move cancelled before render")
	}
	if err := p.renderer.Render(ctx, next); err != nil {
		return pos, eris.Wrap(err, "rendering position")
	}

	if err := p.store.Save(next); err != nil {
		return pos, err
	}
	log.Info().Int("x", next.X).Int("y", next.Y).Bool("changed", changed).Msg("position saved")
	return next, nil
}
