package main

import (
	"encoding/json"
	"fmt"

	ndslog "github.com/fwojciec/newsdesk/slog"
)

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"News page URL"`
	JSON bool   `help:"Print the extraction as JSON"`

	SourceFlags `embed:""`
	LogFlags    `embed:""`
}

// Run fetches the page and prints the extracted title and body.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	logger := c.Logger(deps.Stderr)

	extractor, err := c.NewExtractor()
	if err != nil {
		return err
	}
	fetcher, err := c.NewFetcher()
	if err != nil {
		return err
	}
	defer fetcher.Close()

	html, err := ndslog.NewLoggingFetcher(fetcher, logger).Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", c.URL, err)
	}

	article, err := ndslog.NewLoggingExtractor(extractor, logger).Extract(html)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", c.URL, err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"titulo":   article.Title,
			"conteudo": article.Body,
		})
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, article.Body)
	return nil
}
