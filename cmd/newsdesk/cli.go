package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/goquery"
	ndhttp "github.com/fwojciec/newsdesk/http"
	"github.com/fwojciec/newsdesk/readability"
	"github.com/fwojciec/newsdesk/rod"
	"github.com/fwojciec/newsdesk/trafilatura"
)

// Dependencies holds what every command needs to run.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Serve the news rewriting HTTP API"`
	Extract ExtractCmd `cmd:"" help:"Fetch a news page and print its extracted article"`
}

// LogFlags configure the process logger.
type LogFlags struct {
	LogFormat string `name:"log-format" enum:"text,json" default:"text" env:"NEWSDESK_LOG_FORMAT" help:"Log output format (text, json)"`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" env:"NEWSDESK_LOG_LEVEL" help:"Minimum log level"`
}

// Logger returns a logger writing to w.
func (f LogFlags) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch f.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if f.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SourceFlags select how source pages are fetched and extracted.
type SourceFlags struct {
	Fetcher   string        `enum:"http,rod" default:"http" env:"NEWSDESK_FETCHER" help:"Page fetcher: plain GET (http) or headless Chrome (rod)"`
	Extractor string        `enum:"heuristic,readability,trafilatura" default:"heuristic" env:"NEWSDESK_EXTRACTOR" help:"Article extractor"`
	Weights   string        `type:"existingfile" env:"NEWSDESK_WEIGHTS" help:"YAML file overriding heuristic scoring weights"`
	Timeout   time.Duration `default:"30s" env:"NEWSDESK_FETCH_TIMEOUT" help:"Page fetch timeout"`
}

// NewFetcher returns the selected fetcher. The caller must close it.
func (f SourceFlags) NewFetcher() (newsdesk.Fetcher, error) {
	if f.Fetcher == "rod" {
		fetcher, err := rod.NewFetcher(rod.WithTimeout(f.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}
	return ndhttp.NewFetcher(ndhttp.WithTimeout(f.Timeout)), nil
}

// NewExtractor returns the selected extractor.
func (f SourceFlags) NewExtractor() (newsdesk.Extractor, error) {
	switch f.Extractor {
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}

	var opts []goquery.Option
	if f.Weights != "" {
		w, err := goquery.LoadWeights(f.Weights)
		if err != nil {
			return nil, err
		}
		opts = append(opts, goquery.WithWeights(w))
	}
	return goquery.NewExtractor(opts...), nil
}
