// Package tfidf weighs terms of a small document corpus by term frequency and
// inverse document frequency.
package tfidf

import (
	"math"

	"github.com/basedalex/doc-compare/pkg/words"
)

// Corpus keeps per-document term counts and the ordered term universe.
type Corpus struct {
	documents []map[string]int
	docFreq   map[string]int
	// terms in order of first appearance, earlier documents first
	terms []string
}

// Weights holds two dense vectors positionally aligned to Terms.
type Weights struct {
	Terms   []string
	Vector1 []float64
	Vector2 []float64
}

// NewCorpus splits every text into weighting terms and counts them.
func NewCorpus(texts ...string) *Corpus {
	c := &Corpus{
		documents: make([]map[string]int, 0, len(texts)),
		docFreq:   make(map[string]int),
	}

	for _, text := range texts {
		c.AddDocument(text)
	}

	return c
}

// AddDocument counts the terms of text. Punctuation and stopwords of any length carry no weight.
func (c *Corpus) AddDocument(text string) {
	counts := make(map[string]int)

	for _, term := range words.Terms(text) {
		if _, seen := counts[term]; !seen {
			c.docFreq[term]++
			if c.docFreq[term] == 1 {
				c.terms = append(c.terms, term)
			}
		}
		counts[term]++
	}

	c.documents = append(c.documents, counts)
}

func (c *Corpus) Len() int {
	return len(c.documents)
}

// Terms returns the term universe. The slice must not be modified.
func (c *Corpus) Terms() []string {
	return c.terms
}

// TF is the raw count of term in document doc.
func (c *Corpus) TF(term string, doc int) float64 {
	return float64(c.documents[doc][term])
}

// IDF uses the smoothed form 1 + ln(N / (1 + df)).
// Terms missing from the whole corpus get 0.
func (c *Corpus) IDF(term string) float64 {
	df := c.docFreq[term]
	if df == 0 {
		return 0
	}
	return 1 + math.Log(float64(len(c.documents))/float64(1+df))
}

func (c *Corpus) TFIDF(term string, doc int) float64 {
	return c.TF(term, doc) * c.IDF(term)
}

// Vector returns the dense weights of document doc over Terms.
func (c *Corpus) Vector(doc int) []float64 {
	vec := make([]float64, len(c.terms))
	for i, term := range c.terms {
		vec[i] = c.TFIDF(term, doc)
	}
	return vec
}

// Weigh treats text1 and text2 as a two document corpus.
func Weigh(text1, text2 string) Weights {
	c := NewCorpus(text1, text2)

	return Weights{
		Terms:   c.Terms(),
		Vector1: c.Vector(0),
		Vector2: c.Vector(1),
	}
}
