package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/bluemonday"
	"github.com/fwojciec/newsdesk/editor"
	"github.com/fwojciec/newsdesk/fs"
	"github.com/fwojciec/newsdesk/gemini"
	"github.com/fwojciec/newsdesk/htmltomarkdown"
	ndhttp "github.com/fwojciec/newsdesk/http"
	"github.com/fwojciec/newsdesk/openai"
	ndslog "github.com/fwojciec/newsdesk/slog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string        `default:":3000" env:"NEWSDESK_ADDR" help:"Listen address"`
	BaseURL         string        `name:"base-url" default:"http://localhost:3000" env:"API_URL" help:"Public URL prefixed to stored image paths"`
	ImageDir        string        `name:"image-dir" default:"public/imagens" env:"NEWSDESK_IMAGE_DIR" help:"Directory generated images are written to and served from"`
	ShutdownTimeout time.Duration `name:"shutdown-timeout" default:"10s" help:"Time allowed for in-flight requests on shutdown"`

	Rewriter      string `enum:"deepseek,gemini" default:"deepseek" env:"NEWSDESK_REWRITER" help:"Rewriting service (deepseek, gemini)"`
	DeepSeekKey   string `name:"deepseek-key" env:"DEEPSEEK_API_KEY" help:"DeepSeek API key"`
	DeepSeekURL   string `name:"deepseek-url" default:"https://api.deepseek.com/v1" env:"NEWSDESK_DEEPSEEK_URL" help:"DeepSeek API base URL"`
	DeepSeekModel string `name:"deepseek-model" default:"deepseek-chat" help:"DeepSeek chat model"`
	GeminiKey     string `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key, also used for image generation"`
	TextModel     string `name:"text-model" default:"gemini-2.5-flash" help:"Gemini text model"`
	ImageModel    string `name:"image-model" default:"imagen-3.0-generate-002" help:"Imagen model"`
	AspectRatio   string `name:"aspect-ratio" default:"4:3" help:"Aspect ratio of generated images"`
	NoImages      bool   `name:"no-images" help:"Disable image generation"`

	SourceFlags `embed:""`
	LogFlags    `embed:""`
}

// Run wires the services and serves until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	logger := c.Logger(deps.Stderr)

	ed, closeFn, err := c.NewEditor(ctx, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	server := ndhttp.NewServer()
	server.Addr = c.Addr
	server.ImageDir = c.ImageDir
	server.Logger = logger
	server.StoryService = ed

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	logger.Info("listening", "addr", c.Addr, "rewriter", c.Rewriter, "fetcher", c.Fetcher, "extractor", c.Extractor)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return server.Close(shutdownCtx)
	})
	return g.Wait()
}

// NewEditor builds the story pipeline from the command flags. The returned
// function releases the fetcher.
func (c *ServeCmd) NewEditor(ctx context.Context, logger *slog.Logger) (*editor.Editor, func(), error) {
	extractor, err := c.NewExtractor()
	if err != nil {
		return nil, nil, err
	}

	var client *genai.Client
	if c.GeminiKey != "" {
		if client, err = gemini.NewClient(ctx, c.GeminiKey); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	var rewriter newsdesk.Rewriter
	switch c.Rewriter {
	case "gemini":
		if client == nil {
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		rewriter = gemini.NewRewriter(client, gemini.WithTextModel(c.TextModel))
	default:
		if c.DeepSeekKey == "" {
			return nil, nil, fmt.Errorf("DEEPSEEK_API_KEY not set")
		}
		rewriter = openai.NewRewriter(openai.NewClient(c.DeepSeekKey, c.DeepSeekURL), openai.WithModel(c.DeepSeekModel))
	}

	fetcher, err := c.NewFetcher()
	if err != nil {
		return nil, nil, err
	}

	ed := &editor.Editor{
		Fetcher:   ndslog.NewLoggingFetcher(fetcher, logger),
		Extractor: ndslog.NewLoggingExtractor(extractor, logger),
		Sanitizer: bluemonday.NewSanitizer(),
		Converter: htmltomarkdown.NewConverter(),
		Rewriter:  ndslog.NewLoggingRewriter(rewriter, logger),
		Logger:    logger,
		ImageOptions: newsdesk.ImageOptions{
			AspectRatio: c.AspectRatio,
		},
	}

	switch {
	case c.NoImages:
		logger.Info("image generation disabled")
	case client == nil:
		logger.Warn("image generation disabled: GEMINI_API_KEY not set")
	default:
		ed.Illustrator = ndslog.NewLoggingIllustrator(gemini.NewIllustrator(client, gemini.WithImageModel(c.ImageModel)), logger)
		ed.Images = ndslog.NewLoggingImageStore(fs.NewImageStore(c.ImageDir, c.BaseURL), logger)
	}

	return ed, func() { _ = fetcher.Close() }, nil
}
