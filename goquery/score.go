package goquery

import (
	"unicode"
	"unicode/utf8"
)

// Score rates how likely the element at i is to be the main article
// container. anchor is the index of the document's first h1, or -1 when the
// document has none. Score is a pure function of its arguments.
func Score(t *Tree, i, anchor int, w Weights) float64 {
	var score float64

	f := features(t, i)
	words := countWords(t.Text(i), w.MinWordLength)

	score += float64(f.paragraphs) * w.Paragraph
	score += float64(words) * w.Word

	if f.headings > 0 {
		score += w.Heading
	}
	if f.images > 0 {
		score += w.Image
	}
	if f.dates > 0 {
		score += w.Date
	}

	if anchor >= 0 && abs(t.Nodes[i].Index-t.Nodes[anchor].Index) < w.ProximityDistance {
		score += w.Proximity
	}

	if words < w.MinWords {
		score -= w.SmallPenalty
	}
	if words > w.MaxWords {
		score -= w.LargePenalty
	}

	if f.listItems > w.MaxListItems {
		score -= w.ListPenalty
	}
	if f.links > w.MaxLinks {
		score -= w.LinkPenalty
	}

	if t.HasClass(i, "sidebar") || t.HasClass(i, "footer") || t.HasClass(i, "aside") {
		score -= w.BoilerplatePenalty
	}

	return score
}

// featureCounts tallies the descendants of a candidate that matter for scoring.
type featureCounts struct {
	paragraphs int
	headings   int
	images     int
	dates      int
	listItems  int
	links      int
}

func features(t *Tree, i int) featureCounts {
	var f featureCounts
	for j := i + 1; j < t.Nodes[i].End; j++ {
		switch t.Nodes[j].Tag {
		case "p":
			f.paragraphs++
		case "h1", "h2", "h3":
			f.headings++
		case "img":
			f.images++
		case "time":
			f.dates++
			continue
		case "li":
			f.listItems++
		case "a":
			f.links++
		}
		if t.HasClass(j, "date") || t.HasClass(j, "timestamp") {
			f.dates++
		}
	}
	return f
}

// countWords counts whitespace-separated words longer than minLen runes.
func countWords(s string, minLen int) int {
	n, length := 0, 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if unicode.IsSpace(r) {
			if length > minLen {
				n++
			}
			length = 0
			continue
		}
		length++
	}
	if length > minLen {
		n++
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
