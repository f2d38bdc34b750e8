package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/settings"
)

// ExitError is an error carrying a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// config is everything one run needs: the settings file overridden by
// flags, plus logging.
type config struct {
	settings.Settings
	logLevel, logFormat string
}

// parse processes command-line arguments. It returns the run config, whether
// the program should exit cleanly, or an ExitError.
func parse(args []string, output io.Writer) (*config, bool, error) {
	fs := flag.NewFlagSet("palm", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
palm - place pictures and captions onto an existing PDF.

Usage:
  palm [options]
  palm fixext INPUT OUTPUT

Relative picture folders given as flags are resolved against the layout
file's folder.

Options:
`)
		fs.PrintDefaults()
	}

	settingsFlag := fs.String("settings", "", "Path to an HCL settings file.")
	layoutFlag := fs.String("layout", "", "Path to the JSON layout file.")
	docFlag := fs.String("doc", "", "Path to the PDF to lay out.")
	outFlag := fs.String("out", "", "Output PDF path (default: <doc>-laid-out.pdf).")
	layerFlag := fs.String("layer", "", "Layer for every created object.")
	styleFlag := fs.String("style", "", "Paragraph style applied to every text element; declared in the -settings file.")
	picsFlag := fs.String("pics", "", "Folder of the \"originals\" fileset.")
	updatedFlag := fs.String("updated-pics", "", "Folder of the \"updates\" fileset.")
	picsDirFlag := fs.String("pics-dir", "", "Single folder for every picture; ignores filesets.")
	keepGoingFlag := fs.Bool("keep-going", false, "Skip elements that cannot be placed and report them at the end.")
	barcodesFlag := fs.Bool("barcodes", false, "Place \"code\" elements as barcodes.")
	fixFlag := fs.Bool("fix-extensions", false, "Use a picture with the same name when the named file does not exist.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	if len(args) == 0 {
		fs.Usage()
		return nil, true, nil
	}

	cfg := &config{}
	if *settingsFlag != "" {
		s, err := settings.Load(*settingsFlag)
		if err != nil {
			return nil, false, err
		}
		cfg.Settings = *s
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name string, dst *string, v string) {
		if set[name] {
			*dst = v
		}
	}
	override("layout", &cfg.Layout, *layoutFlag)
	override("doc", &cfg.Document, *docFlag)
	override("out", &cfg.Output, *outFlag)
	override("layer", &cfg.Layer, *layerFlag)
	override("style", &cfg.Style, *styleFlag)

	baseDir := filepath.Dir(cfg.Layout)
	override("pics", &cfg.Pics, relativeTo(baseDir, *picsFlag))
	override("updated-pics", &cfg.UpdatedPics, relativeTo(baseDir, *updatedFlag))
	override("pics-dir", &cfg.PicsDir, relativeTo(baseDir, *picsDirFlag))
	if set["keep-going"] {
		cfg.OnError = palm.AbortOnError
		if *keepGoingFlag {
			cfg.OnError = palm.ContinueOnError
		}
	}
	if set["barcodes"] {
		cfg.Barcodes = *barcodesFlag
	}
	if set["fix-extensions"] {
		cfg.FixExtensions = *fixFlag
	}

	cfg.logFormat = strings.ToLower(*logFormatFlag)
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.logLevel = strings.ToLower(*logLevelFlag)
	switch cfg.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if cfg.Style != "" {
		if _, ok := cfg.Styles[cfg.Style]; !ok {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown paragraph style %q: declare it in the settings file", cfg.Style)}
		}
	}

	if cfg.Layout == "" || cfg.Document == "" {
		return nil, false, &ExitError{Code: 2, Message: "both a layout file and a document are required (-layout, -doc or -settings)"}
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput(cfg.Document)
	}
	return cfg, false, nil
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
