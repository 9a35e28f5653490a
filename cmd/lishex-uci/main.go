// Command lishex-uci runs the engine as a UCI process over stdin/stdout.
package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"github.com/mkjm2/lishex/internal/engine"
	"github.com/mkjm2/lishex/internal/uci"
)

var (
	configPath = flag.String("config", "", "path to a TOML config file (defaults built in)")
	cpuProfile = flag.Bool("cpuprofile", false, "profile CPU usage for the life of the process")
	memProfile = flag.Bool("memprofile", false, "profile heap usage for the life of the process")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("lishex-uci: loading config %q: %v", *configPath, err)
	}

	eng := engine.NewEngine(cfg)
	uci.New(eng).Run()
}
