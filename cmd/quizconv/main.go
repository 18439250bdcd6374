// Command quizconv converts quiz text documents into platform spreadsheets
// without running the server.
// Usage: quizconv [-format quizizz|gform|both] [-out DIR] FILE...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/service"
	"quizforge/internal/xlsxexport"
)

func main() {
	format := flag.String("format", "both", "export format: quizizz, gform, or both")
	outDir := flag.String("out", ".", "output directory for generated workbooks")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: quizconv [-format quizizz|gform|both] [-out DIR] FILE...")
		os.Exit(2)
	}

	if err := run(*format, *outDir, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(format, outDir string, files []string) error {
	var formats []domain.ExportFormat
	if format == "both" {
		formats = []domain.ExportFormat{domain.ExportFormatQuizizz, domain.ExportFormatGForm}
	} else {
		f, ok := domain.ParseExportFormat(format)
		if !ok {
			return fmt.Errorf("unknown format %q (want quizizz, gform, or both)", format)
		}
		formats = []domain.ExportFormat{f}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := service.NewQuizService(cfg.Upload, cfg.Parse)
	opts := xlsxexport.Options{TimeSeconds: cfg.Export.TimeSeconds, Points: cfg.Export.Points}

	for _, path := range files {
		if err := convert(svc, cfg, opts, formats, path, outDir); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func convert(
	svc service.QuizService,
	cfg *config.Config,
	opts xlsxexport.Options,
	formats []domain.ExportFormat,
	path, outDir string,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := svc.Parse(context.Background(), service.ParseInput{
		Filename: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		return err
	}

	for _, f := range result.Failures {
		log.Printf("%s: block %d: %s", path, f.Block, f.Reason)
	}
	if len(result.Questions) == 0 {
		return domain.ErrNoValidQuestions
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, format := range formats {
		var out []byte
		var suffix string
		switch format {
		case domain.ExportFormatQuizizz:
			suffix = cfg.Export.QuizizzSuffix
			out, err = xlsxexport.WriteQuizizz(result.Questions, opts)
		case domain.ExportFormatGForm:
			suffix = cfg.Export.GFormSuffix
			out, err = xlsxexport.WriteGForm(result.Questions, opts)
		}
		if err != nil {
			return err
		}

		name := filepath.Join(outDir, xlsxexport.BuildFilename(base, suffix))
		if err := os.WriteFile(name, out, 0o644); err != nil {
			return err
		}
		log.Printf("%s: wrote %s (%d questions, %d failed blocks)",
			path, name, result.Parsed, result.Failed)
	}
	return nil
}
