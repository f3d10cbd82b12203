package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongsim/audio"
	"github.com/lguibr/pongsim/bollywood"
	"github.com/lguibr/pongsim/game"
	"github.com/lguibr/pongsim/server"
	"github.com/lguibr/pongsim/terminal"
	"github.com/lguibr/pongsim/utils"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
)

// Environment keys holding the persisted mode and AI difficulty.
const (
	envGameMode     = "PONG_GAME_MODE"
	envAIDifficulty = "PONG_AI_DIFFICULTY"
)

type options struct {
	configPath  string
	mode        string
	difficulty  string
	ai          bool
	maxScore    int
	player0     string
	player1     string
	seed        int64
	spectate    string
	logPath     string
	debug       bool
	mute        bool
	holdTimeout time.Duration
}

func parseOptions(args []string, getenv func(string) string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pongsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configPath, "config", "", "YAML file overriding the default tuning")
	fs.StringVar(&opts.mode, "mode", getenv(envGameMode), "Game mode: default or multiplayer (env "+envGameMode+")")
	fs.StringVar(&opts.difficulty, "difficulty", getenv(envAIDifficulty), "AI difficulty: easy, medium or hard (env "+envAIDifficulty+")")
	fs.BoolVar(&opts.ai, "ai", false, "Let the AI drive the right paddle")
	fs.IntVar(&opts.maxScore, "max-score", 0, "Points needed to win (0 uses the config default)")
	fs.StringVar(&opts.player0, "p0", "", "Name of the left player")
	fs.StringVar(&opts.player1, "p1", "", "Name of the right player")
	fs.Int64Var(&opts.seed, "seed", 0, "Simulation seed (0 keeps the config seed)")
	fs.StringVar(&opts.spectate, "spectate", "", "Serve the read-only spectator API on this address, e.g. :3001")
	fs.StringVar(&opts.logPath, "log", "pongsim.log", "Log file; the terminal belongs to the game")
	fs.BoolVar(&opts.debug, "debug", false, "Log at debug level")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")
	fs.DurationVar(&opts.holdTimeout, "hold", terminal.DefaultHoldTimeout, "A paddle key is released when its auto-repeat pauses this long")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func (o options) gameConfig() game.GameConfig {
	return game.GameConfig{
		MaxScore:    o.maxScore,
		GameType:    game.ParseGameType(o.mode),
		Player0Name: o.player0,
		Player1Name: o.player1,
	}
}

func (o options) loadConfig() (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = utils.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	return cfg, nil
}

// setupLogging sends the global logger to a file in console format.
func setupLogging(path string, debug bool) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	cw := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)
	return f, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Println("pongsim: terminal pong. Keys: W/S left paddle, O/L right paddle, I/K or 8/2 center paddle.")
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pongsim:", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "pongsim:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logFile, err := setupLogging(opts.logPath, opts.debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	g := game.NewGame(cfg, opts.gameConfig())
	if opts.ai {
		g.EnableAI(game.ParseDifficulty(opts.difficulty))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	loop := game.NewFrameLoop(cfg.TickPeriod)
	host := terminal.NewHost(g, cfg, loop, screen, opts.holdTimeout)
	g.OnFrame(host.Render)

	if !opts.mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			zerologlog.Warn().Err(err).Msg("audio unavailable, playing silently")
		} else {
			defer sounds.Cleanup()
			host.AttachSounds(sounds)
		}
	}

	engine := bollywood.NewEngine()
	defer func() {
		if err := engine.Shutdown(2 * time.Second); err != nil {
			zerologlog.Warn().Err(err).Msg("actor engine shutdown")
		}
	}()

	if opts.spectate != "" {
		srv := server.New(engine)
		srv.Attach(g.Events())
		g.OnFrame(srv.Publish)
		go func() {
			if err := srv.ListenAndServe(ctx, opts.spectate); err != nil {
				zerologlog.Error().Err(err).Str("addr", opts.spectate).Msg("spectator server failed")
			}
		}()
	}

	host.Listen(ctx)
	g.Run(loop)
	zerologlog.Info().Str("game", g.ID()).Msg("frame loop running")

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	score := g.Scores()
	zerologlog.Info().
		Str("game", g.ID()).
		Int("player0", score.Player0).
		Int("player1", score.Player1).
		Uint64("ticks", g.Ticks()).
		Msg("session ended")
	return err
}
