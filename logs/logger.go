package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level    = new(slog.LevelVar)
	levelSet atomic.Bool
)

func setLevel(l slog.Level) {
	level.Set(l)
	levelSet.Store(true)
}

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		setLevel(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		setLevel(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		setLevel(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		setLevel(slog.LevelError)
	}).Desc("set log level to error"))
}

// modeLevel is warn in production so diagnostics do not interleave with
// program output on a terminal, and debug in development. A -log-* command
// overrides both.
type modeLevel struct {
	mode modes.Mode
}

func (m modeLevel) Level() slog.Level {
	if levelSet.Load() {
		return level.Level()
	}
	if m.mode == modes.ModeDevelopment {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	var handlers []slog.Handler

	isSystemdService := false
	cgroupPath, err := getCgroupPath()
	if err == nil {
		isSystemdService = strings.HasSuffix(
			path.Dir(cgroupPath),
			".service",
		)
	}

	// local
	var terminalHandler slog.Handler
	if !isSystemdService {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level:     modeLevel{mode: mode},
				AddSource: mode == modes.ModeDevelopment,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	// systemd journal, production only
	if mode == modes.ModeProduction {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: modeLevel{mode: mode},
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			ctx := context.Background()
			if terminalHandler != nil && terminalHandler.Enabled(ctx, slog.LevelDebug) {
				record := slog.NewRecord(time.Now(), slog.LevelDebug, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(ctx, record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
