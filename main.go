package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jdginn/go-laser-puzzle/config"
	"github.com/jdginn/go-laser-puzzle/interact"
	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/level"
	"github.com/jdginn/go-laser-puzzle/puzzle"
	"github.com/jdginn/go-laser-puzzle/run"
	"github.com/jdginn/go-laser-puzzle/scene"
	"github.com/jdginn/go-laser-puzzle/view"
)

type Globals struct {
	Config   string `short:"c" type:"existingfile" help:"YAML config file"`
	LogLevel string `name:"log-level" help:"debug, info, warn or error (overrides the config)"`
}

// app is what every command runs against
type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newApp(g Globals) (*app, error) {
	cfg := config.Default()
	if g.Config != "" {
		var err error
		cfg, err = config.LoadFromFile(g.Config, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
		if err != nil {
			return nil, err
		}
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.New(config.FormatValidationErrors(errs))
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "laser",
	})
	lvl, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return &app{cfg: cfg, logger: logger}, nil
}

// LevelArgs selects a level and the clicks to apply to it before anything else happens
type LevelArgs struct {
	Level  string   `arg:"" optional:"" type:"existingfile" help:"level file (defaults to level.path from the config)"`
	Rotate []string `short:"r" help:"cells to click first, as x,y"`
	Mode   string   `short:"m" help:"rotation mode, single or propagating (defaults to the config)"`
}

func (a LevelArgs) path(app *app) (string, error) {
	if a.Level != "" {
		return a.Level, nil
	}
	if app.cfg.Level.Path != "" {
		return app.cfg.Level.Path, nil
	}
	return "", errors.New("no level given and level.path is not set")
}

func (a LevelArgs) session(app *app) (*puzzle.Session, error) {
	path, err := a.path(app)
	if err != nil {
		return nil, err
	}
	l, err := level.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mode, err := app.cfg.RotationMode()
	if a.Mode != "" {
		mode, err = level.ParseRotationMode(a.Mode)
	}
	if err != nil {
		return nil, err
	}

	s := puzzle.NewSession(l,
		puzzle.WithRotationMode(mode),
		puzzle.WithTraceParams(app.cfg.TraceParams()),
		puzzle.WithLogger(app.logger),
	)
	for _, r := range a.Rotate {
		var x, y int
		if _, err := fmt.Sscanf(strings.TrimSpace(r), "%d,%d", &x, &y); err != nil {
			return nil, fmt.Errorf("parsing rotation %q: %w", r, err)
		}
		if _, err := s.Rotate(level.P(x, y)); err != nil {
			return nil, err
		}
	}
	app.logger.Debug("level loaded", "path", path, "width", l.Width(), "height", l.Height(), "mirrors", len(l.Mirrors()))
	return s, nil
}

// OutputArgs picks where an artifact is written. Without --out a fresh run directory is created.
type OutputArgs struct {
	Out  string `short:"o" help:"output file"`
	Runs string `default:"runs" help:"directory holding run directories"`
}

func (o OutputArgs) file(app *app, levelPath, name string) (string, error) {
	if o.Out != "" {
		return o.Out, nil
	}
	dir, err := run.CreateDirectory(o.Runs)
	if err != nil {
		return "", err
	}
	if err := dir.CopyFile(levelPath); err != nil {
		app.logger.Warn("could not copy level into run directory", "err", err)
	}
	return dir.GetFilePath(name), nil
}

var CLI struct {
	Globals

	Trace      TraceCmd      `cmd:"" help:"Trace the beam through a level"`
	Validate   ValidateCmd   `cmd:"" help:"Check that level files are well formed"`
	Render     RenderCmd     `cmd:"" help:"Draw a level and its beam as a PNG"`
	Plot       PlotCmd       `cmd:"" help:"Chart a level and its beam"`
	Scene      SceneCmd      `cmd:"" help:"Export a level and its beam as JSON"`
	Stl        StlCmd        `cmd:"" help:"Export the level colliders as an STL mesh"`
	Solve      SolveCmd      `cmd:"" help:"Find the fewest clicks that solve a level"`
	Play       PlayCmd       `cmd:"" help:"Play a level in the terminal"`
	InitConfig InitConfigCmd `cmd:"" name:"init-config" help:"Write the default config"`
}

type TraceCmd struct {
	LevelArgs
}

func (c TraceCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	beam := s.Beam()
	for i, p := range beam.Points {
		fmt.Printf("%d\t%.4f\t%.4f\n", i, p.X, p.Y)
	}
	app.logger.Info("traced", "outcome", beam.Outcome, "bounces", beam.Bounces, "solved", s.Solved())
	return nil
}

type ValidateCmd struct {
	Levels []string `arg:"" type:"existingfile" help:"level files"`
}

func (c ValidateCmd) Run(app *app) error {
	errs := make([]error, len(c.Levels))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range c.Levels {
		i, path := i, path
		g.Go(func() error {
			_, errs[i] = level.ReadFile(path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			app.logger.Error("invalid level", "path", c.Levels[i], "err", err)
			continue
		}
		app.logger.Info("ok", "path", c.Levels[i])
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels are invalid", failed, len(c.Levels))
	}
	return nil
}

type RenderCmd struct {
	LevelArgs
	OutputArgs
}

func (c RenderCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	style, err := view.NewStyle(app.cfg.Render)
	if err != nil {
		return err
	}
	levelPath, _ := c.path(app)
	out, err := c.file(app, levelPath, "level.png")
	if err != nil {
		return err
	}
	if err := view.SavePNG(out, view.Render(s.Level(), s.Beam(), style)); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	app.logger.Info("rendered", "path", out)
	return nil
}

type PlotCmd struct {
	LevelArgs
	OutputArgs
	Width  int `default:"600" help:"plot width"`
	Height int `default:"480" help:"plot height"`
}

func (c PlotCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	im, err := view.PlotBeam(s.Level(), s.Beam(), c.Width, c.Height)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	levelPath, _ := c.path(app)
	out, err := c.file(app, levelPath, "beam.png")
	if err != nil {
		return err
	}
	if err := view.SavePNG(out, im); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	app.logger.Info("plotted", "path", out)
	return nil
}

type SceneCmd struct {
	LevelArgs
	OutputArgs
}

func (c SceneCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	levelPath, _ := c.path(app)
	out, err := c.file(app, levelPath, "scene.json")
	if err != nil {
		return err
	}
	if err := scene.Save(out, scene.Build(s.Level(), s.Beam())); err != nil {
		return err
	}
	app.logger.Info("exported scene", "path", out)
	return nil
}

type StlCmd struct {
	LevelArgs
	OutputArgs
}

func (c StlCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	mesh := laser.NewGridCaster(s.Level()).Mesh()
	if len(mesh.Triangles) == 0 {
		return errors.New("level has no mirrors or blocks to export")
	}
	levelPath, _ := c.path(app)
	out, err := c.file(app, levelPath, "level.stl")
	if err != nil {
		return err
	}
	if err := mesh.SaveSTL(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	app.logger.Info("exported mesh", "path", out, "triangles", len(mesh.Triangles))
	return nil
}

type SolveCmd struct {
	LevelArgs
}

func (c SolveCmd) Run(app *app) error {
	s, err := c.session(app)
	if err != nil {
		return err
	}
	solution, ok, err := puzzle.Solve(s.Level(), s.Mode(), s.Params())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no orientation of the mirrors solves the level in %s mode", s.Mode())
	}
	clicks := make([]string, len(solution.Clicks))
	for i, p := range solution.Clicks {
		clicks[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	fmt.Println(strings.Join(clicks, " "))
	app.logger.Info("solved", "clicks", len(solution.Clicks), "mode", s.Mode())
	return nil
}

type PlayCmd struct {
	LevelArgs
}

func (c PlayCmd) Run(app *app) error {
	// the terminal belongs to the game while it runs
	app.logger.SetLevel(log.ErrorLevel)
	s, err := c.session(app)
	if err != nil {
		return err
	}
	return interact.Play(s)
}

type InitConfigCmd struct {
	Path string `arg:"" optional:"" default:"puzzle.yaml" help:"where to write the config"`
}

func (c InitConfigCmd) Run(app *app) error {
	if _, err := os.Stat(c.Path); err == nil {
		return fmt.Errorf("%s already exists", c.Path)
	}
	if err := config.SaveToFile(config.Default(), c.Path); err != nil {
		return err
	}
	abs, _ := filepath.Abs(c.Path)
	app.logger.Info("wrote config", "path", abs)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("laser"),
		kong.Description("Rotate mirrors until the laser reaches the exit."),
	)
	a, err := newApp(CLI.Globals)
	if err != nil {
		log.Fatal(err)
	}
	if err := ctx.Run(a); err != nil {
		a.logger.Fatal(err)
	}
}
