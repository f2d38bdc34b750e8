// Command palm places pictures and captions onto the pages of an existing
// PDF from a JSON layout file.
//
// # Installation
//
//	go install github.com/lvillar/palm/cmd/palm@latest
//
// # Usage
//
//	palm -layout layout.json -doc yearbook.pdf -pics originals -updated-pics retouched
//	palm -settings palm.hcl
//	palm fixext roster.tsv roster-fixed.tsv
//
// Flags override values read from the settings file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvillar/palm"
	"github.com/lvillar/palm/logging"
	"github.com/lvillar/palm/pdfcanvas"
	"github.com/lvillar/palm/picmap"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "palm: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the command so tests can drive it.
func run(outW, errW io.Writer, args []string) error {
	if len(args) > 0 && args[0] == "fixext" {
		return runFixExt(outW, args[1:])
	}

	cfg, shouldExit, err := parse(args, outW)
	if err != nil || shouldExit {
		return err
	}
	logging.SetLogger(logging.New(cfg.logLevel, cfg.logFormat, errW))
	return layout(cfg)
}

func layout(cfg *config) error {
	log := logging.Logger()

	d, err := palm.LoadFile(cfg.Layout)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if cfg.FixExtensions {
		opts = append(opts, palm.WithFixer(picmap.NewFixer()))
	}
	params, err := palm.NewParams(opts...)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	doc, err := pdfcanvas.Open(cfg.Document, cfg.CanvasOptions()...)
	if err != nil {
		return err
	}

	layoutErr := palm.CreateLayout(doc, d, params)
	if layoutErr != nil {
		log.Error("layout incomplete", "err", layoutErr)
	}
	// Objects placed before a failure are kept, as they would be in an open
	// document.
	if err := doc.OutputFile(cfg.Output); err != nil {
		return errors.Join(layoutErr, err)
	}
	log.Info("layout written", "layout", cfg.Layout, "doc", cfg.Document, "out", cfg.Output, "pages", len(d.Pages))
	return layoutErr
}

func runFixExt(outW io.Writer, args []string) error {
	if len(args) != 2 {
		return &ExitError{Code: 2, Message: "Fixes incorrect file extensions for images in roster files\nUsage:\n  palm fixext INPUT OUTPUT"}
	}
	report, err := picmap.FixTable(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(outW, "%d\t rows\n", report.Rows)
	fmt.Fprintf(outW, "%d\t pics\n", report.Pics)
	fmt.Fprintf(outW, "%d\t conflicts\n", report.Conflicts)
	fmt.Fprintf(outW, "%d\t missing\n", len(report.Missing))
	return nil
}

// defaultOutput derives the output name from the document name.
func defaultOutput(doc string) string {
	ext := filepath.Ext(doc)
	return strings.TrimSuffix(doc, ext) + "-laid-out" + ext
}
