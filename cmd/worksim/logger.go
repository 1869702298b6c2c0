package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFileWriter is kept package-level so shutdown can close it.
var logFileWriter io.WriteCloser

// initLogger builds the run logger. Verbose selects debug, quiet selects
// warn. A TTY without NO_COLOR gets the console writer; everything else gets
// JSON on stderr. Logs also rotate into <workspace>/.worksim/logs; if the
// file cannot be created the logger stays console-only.
func initLogger(workspace string, verbose, quiet bool) zerolog.Logger {
	writer := selectOutput()
	if fw, err := createLogFileWriter(workspace); err == nil {
		logFileWriter = fw
		writer = zerolog.MultiLevelWriter(writer, fw)
	}
	return zerolog.New(writer).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
}

func closeLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

func createLogFileWriter(workspace string) (io.WriteCloser, error) {
	logDir := filepath.Join(workspace, ".worksim", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "worksim.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}, nil
}
