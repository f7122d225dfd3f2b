package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/andareed/siftly-modal/clock"
	"github.com/andareed/siftly-modal/config"
	"github.com/andareed/siftly-modal/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	logFile    = pflag.String("debug", "", "Write Debug Logs to file")
	configFile = pflag.String("config", "", "Read settings from this TOML file")
)

func main() {
	versionFlag := pflag.Bool("version", false, "print version and exit")

	pflag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// the flag wins over the config file
	debugFile := cfg.Log.File
	if *logFile != "" {
		debugFile = *logFile
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(debugFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-modal: Started")

	m := newModel(cfg, clock.Real())
	defer m.teardown()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
