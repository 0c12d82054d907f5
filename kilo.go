package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bediger4000/gokilo/config"
	"github.com/bediger4000/gokilo/editor"
	"github.com/bediger4000/gokilo/screen"
	"github.com/bediger4000/gokilo/tty"
)

var version = "0.1.0"

var (
	configPath string
	logPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gokilo: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gokilo [file]",
	Short: "A small terminal text editor",
	Long: `gokilo is a small terminal text editor.

Keys:
  Ctrl-S  save          Ctrl-Q  quit
  Ctrl-F  find          Ctrl-C  copy line
  Ctrl-V  paste`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := ""
		if len(args) > 0 {
			filename = args[0]
		}
		return run(filename)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug log to this file")
}

func setupLogging(cfg *config.Config) (io.Closer, error) {
	path := logPath
	if path == "" {
		path = cfg.LogFile
	}
	log.SetPrefix("gokilo: ")
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func clearScreen() {
	io.WriteString(os.Stdout, "\x1b[2J")
	io.WriteString(os.Stdout, "\x1b[H")
}

// handleSignals calls onSignal for the first SIGTERM or SIGHUP.
// The returned stop function unhooks the signals and waits for the
// watching goroutine to finish.
func handleSignals(onSignal func(os.Signal)) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if s, ok := <-sigs; ok {
			onSignal(s)
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(sigs)
		<-done
	}
}

func run(filename string) (err error) {
	path, mustExist := configPath, true
	if path == "" {
		path, mustExist = config.DefaultPath(), false
	}
	cfg, err := config.Load(path, mustExist)
	if err != nil {
		return err
	}
	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("stdin and stdout must be a terminal")
	}

	ttyDev, err := tty.Enable(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			clearScreen()
			ttyDev.Restore()
			panic(r)
		}
		clearScreen()
		if rerr := ttyDev.Restore(); err == nil {
			err = rerr
		}
	}()

	stopSignals := handleSignals(func(s os.Signal) {
		clearScreen()
		ttyDev.Restore()
		log.Printf("exiting on %v", s)
		os.Exit(1)
	})
	defer stopSignals()

	rows, cols, err := screen.WindowSize(int(os.Stdout.Fd()), os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	log.Printf("window %dx%d", rows, cols)

	e := editor.New(os.Stdin, os.Stdout, rows, cols, editor.Options{
		Syntaxes: cfg.Database(),
	})
	if filename != "" {
		if err := e.Open(filename); err != nil {
			return err
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	return e.Run()
}
