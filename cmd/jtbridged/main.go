package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/visform/jtbridge/internal/bridge"
	"github.com/visform/jtbridge/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	observability.InitLogger("jtbridged")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jtbridged: %v\n", err)
		os.Exit(1)
	}

	svc := bridge.NewService(cfg)
	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "jtbridged: %v\n", err)
		os.Exit(1)
	}
}
