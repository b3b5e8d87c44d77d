package newsdesk

import "strings"

// Section labels expected in a model reply, in order.
const (
	LabelTitle       = "TÍTULO:"
	LabelBody        = "CONTEÚDO:"
	LabelSummary     = "RESUMO:"
	LabelHashtags    = "HASHTAGS:"
	LabelImagePrompt = "IMAGE_PROMPT:"
)

var labels = []string{LabelTitle, LabelBody, LabelSummary, LabelHashtags, LabelImagePrompt}

// Sections holds the labeled parts of a model reply.
type Sections struct {
	Title       string
	Body        string
	Summary     string
	Hashtags    string
	ImagePrompt string
}

// ParseSections splits a model reply into its labeled sections.
// Each section starts after the first occurrence of its label and runs up to
// the nearest following label of any kind, or the end of the reply.
// Missing labels yield empty values. Values are passed through SanitizeMarkdown.
func ParseSections(reply string) Sections {
	return Sections{
		Title:       section(reply, LabelTitle),
		Body:        section(reply, LabelBody),
		Summary:     section(reply, LabelSummary),
		Hashtags:    section(reply, LabelHashtags),
		ImagePrompt: section(reply, LabelImagePrompt),
	}
}

func section(reply, label string) string {
	i := strings.Index(reply, label)
	if i < 0 {
		return ""
	}
	start := i + len(label)

	end := len(reply)
	for _, other := range labels {
		if other == label {
			continue
		}
		if j := strings.Index(reply[start:], other); j >= 0 && start+j < end {
			end = start + j
		}
	}

	return SanitizeMarkdown(reply[start:end])
}
