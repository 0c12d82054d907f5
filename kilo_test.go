package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/bediger4000/gokilo/config"
)

func TestTooManyArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"one", "two"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for two file arguments")
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	name := filepath.Join(t.TempDir(), "kilo.log")
	closer, err := setupLogging(&config.Config{LogFile: name})
	if err != nil {
		t.Fatal(err)
	}
	log.Printf("hello")
	closer.Close()
	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "gokilo: ") || !strings.Contains(string(got), "hello") {
		t.Fatalf("log=%q", got)
	}
}

func TestSetupLoggingFlagWins(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	dir := t.TempDir()
	logPath = filepath.Join(dir, "flag.log")
	defer func() { logPath = "" }()
	closer, err := setupLogging(&config.Config{LogFile: filepath.Join(dir, "cfg.log")})
	if err != nil {
		t.Fatal(err)
	}
	closer.Close()
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("flag log not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cfg.log")); err == nil {
		t.Fatal("config log created despite --log")
	}
}

func TestSetupLoggingBadPath(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	_, err := setupLogging(&config.Config{LogFile: filepath.Join(t.TempDir(), "no", "dir", "x.log")})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHandleSignalsStop(t *testing.T) {
	called := false
	stop := handleSignals(func(os.Signal) { called = true })

	finished := make(chan struct{})
	go func() {
		stop()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("signal goroutine still running after stop")
	}
	if called {
		t.Fatal("handler ran without a signal")
	}
}

func TestHandleSignalsDelivers(t *testing.T) {
	got := make(chan os.Signal, 1)
	stop := handleSignals(func(s os.Signal) { got <- s })
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatal(err)
	}
	select {
	case s := <-got:
		if s != syscall.SIGHUP {
			t.Fatalf("got %v", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called for SIGHUP")
	}
}
