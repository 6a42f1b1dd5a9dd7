// Package main implements the entry point for the unitcalc tool: a small
// command line front end for the MKSA constant table and user-defined
// constant catalogs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/igorlesik/rustamath-mks/catalog"
	"github.com/igorlesik/rustamath-mks/constant"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "unitcalc"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("unitcalc failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.ShowVersion {
		fmt.Printf("%s %s\n", appName, Version)
		return nil
	}

	switch {
	case cfg.Describe != "":
		return describeConstant(cfg.Describe)
	case cfg.Find != "":
		return printEntries(constant.Find(cfg.Find))
	case cfg.CatalogPath != "":
		return printCatalog(cfg.CatalogPath)
	case cfg.List:
		return printEntries(constant.All())
	default:
		flag.Usage()
		return nil
	}
}

func describeConstant(key string) error {
	e, err := constant.Lookup(key)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  value: %g %s\n  %s\n", e.Key, e.Factor, e.Unit, e.Description)
	return nil
}

func printEntries(entries []constant.Entry) error {
	for _, e := range entries {
		fmt.Printf("%-26s %14g  %-22s %s\n", e.Key, e.Factor, e.Unit, e.Description)
	}
	slog.Debug("printed constant entries", "count", len(entries))
	return nil
}

func printCatalog(path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "name", c.Name(), "entries", c.Len())

	for _, name := range c.Names() {
		e, _ := c.Entry(name)
		fmt.Printf("%-26s %14g  %-22s %s\n", name, e.Quantity.Val, e.Quantity.Unit, e.Description)
	}
	return nil
}
