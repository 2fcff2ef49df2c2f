// Package main provides the jsinspect terminal application, an interactive
// inspector for JavaScript objects living in a real browser page. It starts
// a playwright-driven browser session, navigates to a URL, and opens a TUI
// bound to a global object where attributes can be resolved, invoked, and
// enumerated.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/junk-io/jsbind/pkg/browser"
	"github.com/junk-io/jsbind/pkg/inspect"
	"github.com/junk-io/jsbind/pkg/logging"
)

const version = "0.1.0"

// Config holds the application configuration.
type Config struct {
	URL         string
	Object      string
	ConfigPath  string
	Headless    bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("jsinspect v%s\n", version)
		return
	}

	if err := config.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := run(config); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// parseFlags parses command line flags.
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.URL, "url", "", "URL to navigate to before inspecting (required)")
	flag.StringVar(&config.Object, "object", "window", "Global object to bind the inspector to")
	flag.StringVar(&config.ConfigPath, "config", "", "Path to browser configuration file (YAML)")
	flag.BoolVar(&config.Headless, "headless", true, "Run the browser without a visible window")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "jsinspect - interactive JavaScript object inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: jsinspect [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  jsinspect -url https://example.com\n")
		fmt.Fprintf(os.Stderr, "  jsinspect -url https://example.com -object document\n")
		fmt.Fprintf(os.Stderr, "  jsinspect -url https://example.com -headless -config browser.yaml\n")
	}

	flag.Parse()
	return config
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("a target URL is required (use -url flag)")
	}
	if c.Object == "" {
		return fmt.Errorf("object name must not be empty")
	}
	return nil
}

// run starts the browser session and hands the page to the inspector.
func run(config *Config) error {
	logger, _ := logging.NewLogger("jsinspect")
	defer logger.Close()
	logger.Infof("starting inspector: url=%s object=%s", config.URL, config.Object)

	cfg := browser.DefaultConfig()
	if config.ConfigPath != "" {
		loaded, err := browser.LoadConfig(config.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load browser config: %w", err)
		}
		cfg = loaded
	}
	cfg.Headless = config.Headless

	manager := browser.NewSessionManager(cfg)
	if err := manager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize browser driver: %w", err)
	}
	defer manager.Shutdown()

	// Close the browser on interrupt even if the TUI is mid-render.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		manager.Shutdown()
		os.Exit(1)
	}()

	session, err := manager.StartSession("inspect", browser.SessionOptions{})
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}

	if err := session.Navigate(config.URL, browser.NavigateOptions{}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", config.URL, err)
	}
	logger.Infof("session %s ready, binding %s", session.Name, config.Object)

	return inspect.Run(session, config.Object)
}
