package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/basedalex/doc-compare/internal/router"
	"github.com/basedalex/doc-compare/pkg/config"
	"github.com/basedalex/doc-compare/pkg/similarity"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	configPath := parseArgs()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("error loading config:", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalln("error parsing log level:", err)
	}
	log.SetLevel(level)

	if err = router.NewServer(ctx, cfg, similarity.New()); err != nil {
		log.Fatal(err)
	}
}

func parseArgs() string {
	var configPath string

	flag.StringVar(&configPath, "c", "config.yaml", "path to config relative to executable")
	flag.Parse()

	return configPath
}
