package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/poolsense/stripscan/internal/config"
	"github.com/poolsense/stripscan/internal/strip"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stripscan %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	fs := flag.NewFlagSet("stripscan", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	debug := fs.Bool("debug", false, "log candidate traces to stderr")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "stripscan - test strip type detection")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: stripscan [options] <image path or URL>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	resource := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stripscan: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	level := cfg.LogLevel()
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	detector := strip.NewDetector(cfg.Params())
	detector.Logger = logger

	detection := detector.DetectResource(context.Background(), resource)

	out, err := json.MarshalIndent(detection, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "stripscan: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
