package benchmark

import (
	"io"
	"log/slog"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nconsole/console"
	"github.com/philipp01105/nconsole/logger"
	"github.com/philipp01105/nconsole/transport"
	"github.com/philipp01105/nconsole/zapsink"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

var facadeOnce sync.Once

// initFacade registers the process-wide console as the facade backend.
// The facade accepts a single registration per process.
func initFacade() {
	facadeOnce.Do(func() {
		if err := console.InitLogger(logger.TraceFilter, transport.NopCloser(io.Discard)); err != nil {
			panic(err)
		}
	})
}

// newConsole returns a console writing to io.Discard.
func newConsole() *console.Console {
	c := console.New()
	c.Replace(transport.NopCloser(io.Discard))
	return c
}

// newZapLogger returns a zap.Logger with a console encoder writing to io.Discard.
func newZapLogger(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapsink.EncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger with a text handler writing to io.Discard.
func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger with a text formatter writing to io.Discard.
func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger writing to io.Discard.
func newZerologLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(io.Discard).Level(level)
}
