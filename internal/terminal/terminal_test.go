package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/session"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		cmd  session.Command
		quit bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), session.CmdUp, false},
		{"upper D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), session.CmdRight, false},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), session.CmdLeft, false},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), session.CmdApply, false},
		{"speed", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), session.CmdSpeedUp, false},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), session.CmdNone, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), session.CmdNone, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.CmdNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, quit := translate(tt.ev)
			if cmd != tt.cmd || quit != tt.quit {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.cmd, tt.quit, cmd, quit)
			}
		})
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	return screen
}

func testConfig() session.Config {
	return session.Config{
		Settings: session.DefaultSettings(),
		Rand:     game.NewRand(1),
	}
}

func runAsync(ctx context.Context, screen tcell.Screen, cfg session.Config) chan error {
	errc := make(chan error, 1)
	go func() { errc <- run(ctx, screen, cfg) }()
	return errc
}

func wait(t *testing.T, errc chan error) {
	t.Helper()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	screen := newScreen(t)
	errc := runAsync(context.Background(), screen, testConfig())

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	wait(t, errc)

	// The first frame is drawn before any input is read.
	var status []rune
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 24)
		status = append(status, r)
	}
	if !strings.Contains(string(status), "score 0") {
		t.Errorf("expected the status line, got %q", string(status))
	}
}

func TestRunStopsWithContext(t *testing.T) {
	screen := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, screen, testConfig())

	time.Sleep(3 * FrameInterval)
	cancel()
	wait(t, errc)
}

func TestRunPublishesMoves(t *testing.T) {
	screen := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())

	snaps := make(chan session.Snapshot, 64)
	cfg := testConfig()
	cfg.Settings.Speed = session.MaxSpeed
	cfg.Publish = func(s session.Snapshot) {
		select {
		case snaps <- s:
		default:
		}
	}
	errc := runAsync(ctx, screen, cfg)

	// The opening position, then at least one move.
	deadline := time.After(2 * time.Second)
	for seen := 0; seen < 2; seen++ {
		select {
		case <-snaps:
		case <-deadline:
			t.Fatalf("expected 2 snapshots, saw %d", seen)
		}
	}
	cancel()
	wait(t, errc)
}
