package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/jaap/internal/app"
	"github.com/five82/jaap/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to "+config.DefaultPath()+")")
	serve := flag.Bool("serve", false, "run the HTTP API instead of the TUI")
	listen := flag.String("listen", "", "HTTP API listen address (optional, defaults to 127.0.0.1:8108)")
	backend := flag.String("storage", "", "storage backend: file, memory, redis, sqlite, postgres, mysql, mongo (optional)")
	printQuote := flag.Bool("quote", false, "print today's message and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Backend:    *backend,
		Listen:     *listen,
	}

	var err error
	switch {
	case *printQuote:
		err = app.PrintQuote(ctx, opts, os.Stdout)
	case *serve:
		err = app.Serve(ctx, opts)
	default:
		err = app.Run(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "jaap: %v\n", err)
		return 1
	}
	return 0
}
