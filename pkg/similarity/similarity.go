package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/basedalex/doc-compare/pkg/tfidf"
	"github.com/basedalex/doc-compare/pkg/words"
	textunicode "golang.org/x/text/encoding/unicode"
)

var ErrMalformedInput = errors.New("input is not valid UTF-8")

type Result struct {
	Similarity  float64  `json:"similarity"`
	CommonWords []string `json:"commonWords"`
}

// Comparer is the stateless service handed to the HTTP layer.
type Comparer struct{}

func New() *Comparer {
	return &Comparer{}
}

func (c *Comparer) Compare(ctx context.Context, doc1, doc2 []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Compare(doc1, doc2)
}

// Decode validates doc as UTF-8 and trims whitespace and byte order marks at both ends.
func Decode(doc []byte) (string, error) {
	if !utf8.Valid(doc) {
		return "", ErrMalformedInput
	}

	decoded, err := textunicode.UTF8BOM.NewDecoder().Bytes(doc)
	if err != nil {
		return "", fmt.Errorf("decoding: %w", err)
	}

	return strings.TrimFunc(string(decoded), isSpaceOrBOM), nil
}

func isSpaceOrBOM(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Compare decodes both documents and scores them with CompareText.
func Compare(doc1, doc2 []byte) (Result, error) {
	text1, err := Decode(doc1)
	if err != nil {
		return Result{}, fmt.Errorf("document 1: %w", err)
	}

	text2, err := Decode(doc2)
	if err != nil {
		return Result{}, fmt.Errorf("document 2: %w", err)
	}

	return CompareText(text1, text2), nil
}

func CompareText(text1, text2 string) Result {
	weighting1, tokens1 := words.Preprocess(text1)
	weighting2, tokens2 := words.Preprocess(text2)

	w := tfidf.Weigh(weighting1, weighting2)

	return Result{
		Similarity:  Cosine(w.Vector1, w.Vector2),
		CommonWords: CommonWords(tokens1, tokens2),
	}
}

// Cosine returns the cosine of the angle between v1 and v2, or 0 when either is a zero vector.
// Both vectors must have the same length.
func Cosine(v1, v2 []float64) float64 {
	if len(v1) != len(v2) {
		panic(fmt.Sprintf("similarity: vector length mismatch %d != %d", len(v1), len(v2)))
	}

	var dot, sum1, sum2 float64
	for i := range v1 {
		dot += v1[i] * v2[i]
		sum1 += v1[i] * v1[i]
		sum2 += v2[i] * v2[i]
	}

	norm1 := math.Sqrt(sum1)
	norm2 := math.Sqrt(sum2)

	if norm1 == 0 || norm2 == 0 {
		return 0
	}

	// rounding can push identical vectors just past 1
	return math.Min(dot/(norm1*norm2), 1)
}

// CommonWords returns the distinct tokens present in both sequences,
// in the order they first appear in tokens1.
func CommonWords(tokens1, tokens2 []string) []string {
	in2 := make(map[string]struct{}, len(tokens2))
	for _, token := range tokens2 {
		in2[token] = struct{}{}
	}

	seen := make(map[string]struct{})
	res := make([]string, 0)

	for _, token := range tokens1 {
		if _, ok := in2[token]; !ok {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		res = append(res, token)
	}

	return res
}
