package main

import (
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"gridsnake/internal/session"
)

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 1234)

	tests := []struct {
		name    string
		flag    string
		env     string
		want    uint64
		wantErr bool
	}{
		{"flag wins", "7", "9", 7, false},
		{"env", "", "9", 9, false},
		{"clock", "", "", 1234, false},
		{"bad env falls back to clock", "", "nope", 1234, false},
		{"bad flag", "-1", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSeed(tt.flag, tt.env, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected seed %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLogEvent(t *testing.T) {
	var buf strings.Builder
	handler := logEvent(log.New(&buf, "", 0))

	handler(session.Event{Type: session.EventFoodEaten, Score: 1, MaximumScore: 44})
	handler(session.Event{Type: session.EventSettingsRejected, Err: errors.New("rows out of range")})

	out := buf.String()
	if !strings.Contains(out, "event food") || !strings.Contains(out, "score=1 max=44") {
		t.Errorf("missing food line in %q", out)
	}
	if !strings.Contains(out, "event rejected: rows out of range") {
		t.Errorf("missing rejection line in %q", out)
	}
}
