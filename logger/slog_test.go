package logger

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/nconsole/core"
)

func TestSlogHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelError, ErrorLevel},
		{slog.LevelError + 4, ErrorLevel},
		{slog.LevelWarn, WarnLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelDebug - 4, TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := slogLevelToCore(tt.in); got != tt.want {
				t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	rl := install(t, TraceLevel, TraceFilter)

	log := slog.New(NewSlogHandler(DebugLevel))
	log.Info("listening", "port", 8080, slog.Group("tls", "enabled", true))

	got := rl.all()
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.Message != "listening port=8080 tls.enabled=true" {
		t.Errorf("Message = %q", r.Message)
	}
	if r.Level != InfoLevel {
		t.Errorf("Level = %v, want INFO", r.Level)
	}
	if r.Module != thisModule {
		t.Errorf("Module = %q, want %q", r.Module, thisModule)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	rl := install(t, TraceLevel, TraceFilter)

	log := slog.New(NewSlogHandler(TraceLevel)).
		With("svc", "fw").
		WithGroup("req").
		With("id", 3)
	log.Warn("slow", "ms", 12)

	got := rl.all()
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if want := "slow svc=fw req.id=3 req.ms=12"; got[0].Message != want {
		t.Errorf("Message = %q, want %q", got[0].Message, want)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	install(t, TraceLevel, InfoFilter)

	h := NewSlogHandler(WarnLevel)
	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Info should be below the handler level")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Error should be enabled")
	}

	h = NewSlogHandler(TraceLevel)
	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("Debug should be rejected by the facade max level")
	}
	if h.WithGroup("") != slog.Handler(h) {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_ModuleWithoutPC(t *testing.T) {
	tests := []struct {
		name  string
		group string
		want  string
	}{
		{"group path", "uart.rx", "uart.rx"},
		{"no group", "", core.UnknownModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := install(t, TraceLevel, TraceFilter)

			var h slog.Handler = NewSlogHandler(TraceLevel)
			for _, g := range strings.Split(tt.group, ".") {
				h = h.WithGroup(g)
			}
			r := slog.NewRecord(time.Time{}, slog.LevelInfo, "overrun", 0)
			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			got := rl.all()
			if len(got) != 1 {
				t.Fatalf("got %d records, want 1", len(got))
			}
			if got[0].Module != tt.want || got[0].Line != 0 {
				t.Errorf("source = %q:%d, want %q:0", got[0].Module, got[0].Line, tt.want)
			}
		})
	}
}
