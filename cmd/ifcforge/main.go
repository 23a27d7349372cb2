// Command ifcforge converts an infrastructure export request (JSON) into
// an IFC exchange file.
//
// Usage:
//
//	ifcforge <request.json> [output.ifc]
//	ifcforge -blank <project name> <output.ifc>
//
// The -blank form writes an empty georeferenced document, used to
// establish a project's coordinate system before any geometry exists.
//
// Configuration is read from IFCFORGE_* environment variables:
//
//	IFCFORGE_LOG_LEVEL  debug | info | warn | error (default info)
//	IFCFORGE_PREVIEW    path for a tessellated preview-mesh JSON dump
//
// The machine-readable result is printed to stdout as JSON; diagnostics
// go to stderr. Exit status is 0 on success, 1 on failure.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/infragrid/ifcforge/pkg/export"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/logger"
	"github.com/infragrid/ifcforge/pkg/model"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ifcforge:", err)
		os.Exit(1)
	}
}

func run() error {
	viper.SetEnvPrefix("ifcforge")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-blank" {
		if len(args) != 3 {
			return fmt.Errorf("usage: ifcforge -blank <project name> <output.ifc>")
		}
		return writeBlank(args[1], args[2])
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: ifcforge <request.json> [output.ifc]")
	}
	inputPath := args[0]
	outputPath := defaultOutput(inputPath)
	if len(args) == 2 {
		outputPath = args[1]
	}

	log, err := logger.New(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	req, err := readRequest(inputPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := export.Options{PreviewPath: viper.GetString("preview")}
	res, exportErr := export.New(log, nil).
		ExportWithOptions(ctx, uuid.NewString(), req, outputPath, opts)

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if exportErr != nil {
		return exportErr
	}
	return nil
}

func writeBlank(name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ifc.NewBlankDocument(name).Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing blank document: %w", err)
	}
	return f.Close()
}

func readRequest(path string) (*model.ExportRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	var req model.ExportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request %s: %w", path, err)
	}
	return &req, nil
}

func defaultOutput(input string) string {
	if i := strings.LastIndex(input, "."); i > 0 {
		return input[:i] + ".ifc"
	}
	return input + ".ifc"
}
