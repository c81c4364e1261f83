package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ian-shakespeare/librpn/internal/shell"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	execName := filepath.Base(args[0])

	flags := flag.NewFlagSet(execName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	expr := flags.String("e", "", "")
	logFile := flags.String("log-file", "", "")
	verbose := flags.Bool("v", false, "")

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			shell.PrintHelp(os.Stdout, execName)
			return 0
		}
		fmt.Fprintln(os.Stderr, "Only --help and -e are valid arguments for now")
		return 1
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Only --help and -e are valid arguments for now")
		return 1
	}

	log, closeLog := newLogger(*logFile, *verbose)
	defer closeLog()

	sh := shell.New(os.Stdin, os.Stdout, os.Stderr, log)

	oneShot := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			oneShot = true
		}
	})
	if oneShot {
		if err := sh.Exec(*expr); err != nil {
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nBye Bye!")
			return 0
		}
		log.WithError(err).Error("prompt stopped")
		return 1
	}
	return 0
}

// newLogger logs text to stderr, or JSON to a rotated file when path is set.
func newLogger(path string, verbose bool) (*logrus.Logger, func()) {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = new(logrus.TextFormatter)

	level := logrus.WarnLevel
	if verbose {
		level = logrus.DebugLevel
	}

	if path == "" {
		log.Level = level
		return log, func() {}
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.Out = file
	log.Formatter = new(logrus.JSONFormatter)
	log.Level = logrus.InfoLevel
	log.Info("Logging to file.")
	log.Level = level
	return log, func() {
		file.Close()
	}
}
