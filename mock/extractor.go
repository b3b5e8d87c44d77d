package mock

import "github.com/fwojciec/newsdesk"

var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsdesk.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newsdesk.Extraction, error)
}

func (e *Extractor) Extract(html string) (*newsdesk.Extraction, error) {
	return e.ExtractFn(html)
}
