package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"notebook/internal/config"
	"notebook/internal/ui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg := config.LoadOrInit()

	h, err := ui.NewApp(cfg)
	if err != nil {
		slog.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	h.Run()
}
