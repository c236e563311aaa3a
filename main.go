package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/revid-ai/framepulse/app"
	"github.com/revid-ai/framepulse/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to a framepulse YAML config (defaults to ./framepulse.yaml)")
	flag.Parse()

	cfg, err := config.Read(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "framepulse: %v\n", err)
		os.Exit(1)
	}

	logger := NewLogger(parseLevel(*cfg.Logging.Level))

	application := app.NewApp("FramePulse", cfg, logger)
	application.Start()
}
