package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/jobportal-tui/internal/api"
	"github.com/altinukshini/jobportal-tui/internal/config"
	"github.com/altinukshini/jobportal-tui/internal/logging"
	"github.com/altinukshini/jobportal-tui/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to the TOML config file")
	apiURL := flag.String("api-url", "", "Job portal API base URL (overrides config)")
	token := flag.String("token", "", "Bearer token for the API (overrides config)")
	timeout := flag.Duration("timeout", 0, "Per-request timeout (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Log file path (overrides config)")
	pageSize := flag.Int("page-size", 0, "Rows per page in the record lists (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("jobportal-tui", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.BaseURL = *apiURL
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *timeout > 0 {
		cfg.RequestTimeout = *timeout
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set JOBPORTAL_TOKEN or pass -token with an admin token")
		os.Exit(1)
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	client, err := api.NewClient(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		os.Exit(1)
	}

	log.WithField("api", cfg.BaseURL).WithField("version", version).Info("starting")
	started := time.Now()

	app := tui.NewApp(cfg, client, log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.WithField("uptime", time.Since(started).Round(time.Second)).Info("exiting")
}
