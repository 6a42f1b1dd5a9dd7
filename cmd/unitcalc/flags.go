package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	List        bool
	Find        string
	Describe    string
	CatalogPath string
	LogLevel    string
	LogFormat   string
	ShowVersion bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.BoolVar(&cfg.List, "list", false,
		"List every constant in the built-in table")

	flag.StringVar(&cfg.Find, "find", "",
		"List constants whose key or description contains the given text")

	flag.StringVar(&cfg.Describe, "describe", "",
		"Print one constant by key, e.g. speed_of_light")

	flag.StringVar(&cfg.CatalogPath, "catalog",
		getEnv("UNITCALC_CATALOG", ""),
		"Path to a user constant catalog YAML file (env: UNITCALC_CATALOG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("UNITCALC_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: UNITCALC_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("UNITCALC_LOG_FORMAT", "text"),
		"Log format: json, text (env: UNITCALC_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false,
		"Show version information and exit")

	flag.Usage = printUsage
	flag.Parse()

	return cfg
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "unitcalc prints the MKSA physical constant table and user catalogs.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
