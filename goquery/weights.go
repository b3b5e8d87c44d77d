package goquery

import (
	"fmt"
	"os"

	"github.com/fwojciec/newsdesk"
	"gopkg.in/yaml.v3"
)

// Weights holds the constants of the candidate scoring function.
// Penalties are stored as positive numbers and subtracted.
type Weights struct {
	Paragraph float64 `yaml:"paragraph"`
	Word      float64 `yaml:"word"`

	// Only words with more runes than MinWordLength are counted.
	MinWordLength int `yaml:"min_word_length"`

	Heading float64 `yaml:"heading"`
	Image   float64 `yaml:"image"`
	Date    float64 `yaml:"date"`

	Proximity         float64 `yaml:"proximity"`
	ProximityDistance int     `yaml:"proximity_distance"`

	MinWords     int     `yaml:"min_words"`
	SmallPenalty float64 `yaml:"small_penalty"`
	MaxWords     int     `yaml:"max_words"`
	LargePenalty float64 `yaml:"large_penalty"`

	MaxListItems int     `yaml:"max_list_items"`
	ListPenalty  float64 `yaml:"list_penalty"`
	MaxLinks     int     `yaml:"max_links"`
	LinkPenalty  float64 `yaml:"link_penalty"`

	BoilerplatePenalty float64 `yaml:"boilerplate_penalty"`
}

// DefaultWeights returns the weights tuned for news portals.
func DefaultWeights() Weights {
	return Weights{
		Paragraph:          2,
		Word:               0.1,
		MinWordLength:      3,
		Heading:            3,
		Image:              2,
		Date:               2,
		Proximity:          5,
		ProximityDistance:  10,
		MinWords:           50,
		SmallPenalty:       10,
		MaxWords:           2000,
		LargePenalty:       5,
		MaxListItems:       10,
		ListPenalty:        10,
		MaxLinks:           20,
		LinkPenalty:        10,
		BoilerplatePenalty: 20,
	}
}

// LoadWeights reads a YAML file over DefaultWeights, so a file only needs
// to name the values it changes.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		return w, err
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parsing weights %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

// Validate returns an error if a threshold is negative.
func (w Weights) Validate() error {
	for name, v := range map[string]int{
		"min_word_length":    w.MinWordLength,
		"proximity_distance": w.ProximityDistance,
		"min_words":          w.MinWords,
		"max_words":          w.MaxWords,
		"max_list_items":     w.MaxListItems,
		"max_links":          w.MaxLinks,
	} {
		if v < 0 {
			return newsdesk.Errorf(newsdesk.EINVALID, "weights: %s must not be negative", name)
		}
	}
	return nil
}
