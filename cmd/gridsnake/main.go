// Command gridsnake plays Snake in an OpenGL window or a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"gridsnake/internal/audio"
	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
	"gridsnake/internal/session"
	"gridsnake/internal/spectate"
	"gridsnake/internal/terminal"
)

var (
	frontendFlag = flag.String("frontend", "gl", "frontend: gl, term")
	rowsFlag     = flag.Int("rows", session.DefaultRows, "grid rows")
	columnsFlag  = flag.Int("columns", session.DefaultColumns, "grid columns")
	speedFlag    = flag.Int("speed", session.DefaultSpeed, "snake speed")
	widthFlag    = flag.Int("width", session.DefaultWidth, "canvas width in pixels")
	heightFlag   = flag.Int("height", session.DefaultHeight, "canvas height in pixels")
	seedFlag     = flag.String("seed", "", "food placement seed (default $SNAKE_SEED, then the clock)")
	muteFlag     = flag.Bool("mute", false, "disable sound effects")
	debugFlag    = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	spectateFlag = flag.String("spectate", "", "serve a websocket spectator feed on this address, e.g. :8080")
)

// glfw must own the process main thread, so the main goroutine is locked to
// it before anything else starts.
func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	requested := session.Settings{
		Rows:    *rowsFlag,
		Columns: *columnsFlag,
		Speed:   *speedFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
	}
	settings, err := requested.Resolve(session.DefaultSettings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v (using defaults for those settings)\n", err)
		logger.Printf("settings: %v", err)
	}

	seed, err := resolveSeed(*seedFlag, os.Getenv("SNAKE_SEED"), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(2)
	}
	logger.Printf("seed %d", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var player *audio.Player
	if !*muteFlag {
		if player, err = audio.New(audio.DefaultVolume); err != nil {
			// Non-fatal, the game runs silent.
			logger.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
	}

	cfg := session.Config{
		Settings: settings,
		Rand:     game.NewRand(seed),
		Logger:   logger,
		Attach: func(c *session.Context) {
			player.Subscribe(c.Events)
			c.Events.SubscribeAll(logEvent(logger))
		},
	}

	if *spectateFlag != "" {
		hub := spectate.NewHub(logger)
		cfg.Publish = hub.Publish
		go func() {
			if err := hub.ListenAndServe(ctx, *spectateFlag); err != nil {
				logger.Printf("spectate: %v", err)
			}
		}()
	}

	switch *frontendFlag {
	case "gl":
		err = desktop.Run(ctx, cfg)
	case "term":
		err = terminal.Run(ctx, cfg)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontendFlag)
	}
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(1)
	}
}

// resolveSeed prefers the flag, then the environment, then the clock.
func resolveSeed(flagValue, envValue string, now time.Time) (uint64, error) {
	if flagValue != "" {
		v, err := strconv.ParseUint(flagValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad -seed %q: %w", flagValue, err)
		}
		return v, nil
	}
	if envValue != "" {
		if v, err := strconv.ParseUint(envValue, 10, 64); err == nil {
			return v, nil
		}
	}
	return uint64(now.UnixNano()), nil
}

func logEvent(logger *log.Logger) session.EventHandler {
	return func(e session.Event) {
		if e.Err != nil {
			logger.Printf("event %s: %v", e.Type, e.Err)
			return
		}
		logger.Printf("event %s head=%v score=%d max=%d", e.Type, e.Head, e.Score, e.MaximumScore)
	}
}
