package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/nconsole/internal/config"
	"github.com/philipp01105/nconsole/console"
	"github.com/philipp01105/nconsole/core"
	"github.com/philipp01105/nconsole/formatter"
	"github.com/philipp01105/nconsole/logger"
)

const (
	modePlain  = "plain"
	modePrefix = "prefix"
	modeLog    = "log"
)

type pipeOptions struct {
	mode   string
	level  string
	module string
	stats  bool
}

func newPipeCmd(cfgFile *string) *cobra.Command {
	opts := &pipeOptions{}

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Copy stdin line by line to the configured transport",
		Long: `Reads stdin and emits every line through the console.

Modes:
  plain   each line is written as "<line>\r\n"
  prefix  each line is written as "<E|W|I>: <module> - <line>\r\n"
  log     each line goes through the leveled logging facade`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			return runPipe(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", modePlain, "output mode: plain, prefix or log")
	cmd.Flags().StringVar(&opts.level, "level", "info", "level for prefix and log modes")
	cmd.Flags().StringVar(&opts.module, "module", "stdin", "module reported in prefix and log modes")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print console statistics to stderr when done")
	return cmd
}

func runPipe(cmd *cobra.Command, cfg *config.Config, opts *pipeOptions) error {
	level, err := core.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("--level %q: %w", opts.level, err)
	}

	t, err := cfg.Build()
	if err != nil {
		return err
	}

	switch opts.mode {
	case modePlain, modePrefix:
		console.Replace(t)
	case modeLog:
		if err := console.InitLogger(cfg.MaxLevel(), t); err != nil {
			_ = t.Close()
			return err
		}
	default:
		_ = t.Close()
		return fmt.Errorf("unknown --mode %q", opts.mode)
	}

	c := console.Default()
	prefix := formatter.NewPrefixFormatter()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		switch opts.mode {
		case modePlain:
			c.Println(line)
		case modePrefix:
			r := &core.Record{Level: prefixLevel(level), Module: opts.module, Message: line}
			c.DispatchBytes(formatter.Format(prefix, r))
		case modeLog:
			logger.Log(level, opts.module, lineNo, line)
		}
	}
	logger.Flush()
	if err := scanner.Err(); err != nil {
		return err
	}

	if opts.stats {
		s := c.Stats()
		fmt.Fprintf(cmd.ErrOrStderr(), "dispatched=%d discarded=%d bytes=%d\n", s.Dispatched, s.Discarded, s.BytesWritten)
	}

	// Release the transport so a file is closed before exit.
	c.Replace(nil)
	return nil
}

// prefixLevel clamps level to the E, W and I prefixes.
func prefixLevel(level core.Level) core.Level {
	if level > core.InfoLevel {
		return core.InfoLevel
	}
	return level
}
