package newsdesk

// Story is the composed result returned to clients.
type Story struct {
	ID          string  `json:"id"`
	Title       string  `json:"titulo"`
	Body        string  `json:"conteudo"`
	Summary     string  `json:"resumo"`
	Hashtags    string  `json:"hashtags"`
	ImagePrompt string  `json:"imagePrompt"`
	ImageURL    *string `json:"imagemUrl"`
	ImageBase64 *string `json:"imagemBase64"`
}

// NewStory builds a story from the sections of a model reply.
func NewStory(id string, s Sections) *Story {
	return &Story{
		ID:          id,
		Title:       s.Title,
		Body:        s.Body,
		Summary:     s.Summary,
		Hashtags:    s.Hashtags,
		ImagePrompt: s.ImagePrompt,
	}
}
