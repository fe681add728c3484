package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("test", "hello", "world!")
	})
	if !strings.Contains(buf.String(), "hello=world!") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestLoggerWithAttrsKeepsSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(t.Context(), "test")
		buf.Reset()
		logger.With("program", "hello.bf").InfoContext(ctx, "run")
		line := buf.String()
		if !strings.Contains(line, "span="+string(span)) {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "program=hello.bf") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestLevelCommands(t *testing.T) {
	defer levelSet.Store(false)

	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		cmds.GlobalExecutor.MustExecute([]string{"-log-error"})
		logger.Warn("hidden")
		if buf.Len() != 0 {
			t.Fatalf("got %q", buf.String())
		}

		cmds.GlobalExecutor.MustExecute([]string{"-log-info"})
		if level.Level() != slog.LevelInfo {
			t.Fatalf("got %v", level.Level())
		}
		logger.Debug("hidden")
		logger.Info("shown")
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %q", buf.String())
		}
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestProductionLevel(t *testing.T) {
	if l := (modeLevel{mode: modes.ModeProduction}).Level(); l != slog.LevelWarn {
		t.Fatalf("got %v", l)
	}
	if l := (modeLevel{mode: modes.ModeDevelopment}).Level(); l != slog.LevelDebug {
		t.Fatalf("got %v", l)
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("span.id-1"); key != "SPAN_ID_1" {
		t.Fatalf("got %v", key)
	}
}
