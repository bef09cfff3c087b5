package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/render"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 derives one from the clock")
	fpsFlag    = flag.Int("fps", 0, "Frames per second, overrides config")
	countFlag  = flag.Int("count", -1, "Entity count, overrides config")
	muteFlag   = flag.Bool("mute", false, "Disable bounce audio")
)

func main() {
	flag.Parse()

	cfg := parameter.DefaultConfig()
	if *configFlag != "" {
		loaded, err := parameter.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *fpsFlag > 0 {
		cfg.FPS = *fpsFlag
	}
	if *countFlag >= 0 {
		cfg.EntityCount = *countFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	logger.Info("starting", zap.Uint64("seed", seed), zap.Int("fps", cfg.FPS), zap.Int("entities", cfg.EntityCount))

	circles := make([]*core.Circle, 0, cfg.EntityCount)
	spec := cfg.RandomSpec()
	for i := 0; i < cfg.EntityCount; i++ {
		c, err := core.RandomCircle(spec, rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "entity %d: %v\n", i, err)
			os.Exit(1)
		}
		circles = append(circles, c)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	// Restore the terminal even if the host crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBOUNCE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()
	screen.HideCursor()

	sink, err := render.NewTerminalSink(screen, cfg.ArenaWidth, cfg.ArenaHeight)
	if err != nil {
		panic(err)
	}

	audioEngine := audio.NewEngine()
	audioEngine.SetMuted(*muteFlag)
	if err := audioEngine.Start(); err == nil {
		defer audioEngine.Stop()
	}

	var quitOnce sync.Once
	quit := make(chan struct{})
	signalQuit := func() { quitOnce.Do(func() { close(quit) }) }

	loop, err := engine.NewLoop(circles, sink, engine.NewTimerScheduler(), engine.LoopConfig{
		FPS:         cfg.FPS,
		ArenaWidth:  cfg.ArenaWidth,
		ArenaHeight: cfg.ArenaHeight,
		OnBounce:    audioEngine.PlayBounce,
		OnStop: func(err error) {
			if err != nil {
				logger.Error("simulation stopped on error", zap.Error(err))
				signalQuit()
			}
		},
		Logger: logger,
	})
	if err != nil {
		panic(err)
	}
	if err := loop.Start(); err != nil {
		panic(err)
	}

	// Host input: quit keys only, the simulation itself takes no input
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					signalQuit()
					return
				case ev.Rune() == 'q':
					signalQuit()
					return
				case ev.Rune() == 'm':
					*muteFlag = !*muteFlag
					audioEngine.SetMuted(*muteFlag)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	<-quit
	loop.Stop()
	logger.Info("exiting", zap.Uint64("ticks", loop.Ticks()))
}

// buildLogger writes to the configured file; the terminal belongs to tcell
func buildLogger(cfg parameter.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}
	return zapCfg.Build()
}
