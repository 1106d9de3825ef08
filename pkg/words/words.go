package words

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"
	"github.com/sirupsen/logrus"
)

// words with embedded apostrophes stay whole, listed punctuation marks are tokens of their own,
// every other symbol is a separator
var tokenRegex = regexp.MustCompile(`[\p{L}\p{N}_]+(?:'[\p{L}\p{N}_]+)*|[.,!?;:"'()\[\]{}]`)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

var punctuation = map[string]struct{}{
	".": {}, ",": {}, "!": {}, "?": {}, ";": {}, ":": {}, "\"": {}, "'": {},
	"(": {}, ")": {}, "[": {}, "]": {}, "{": {}, "}": {},
}

var (
	pronouns = []string{
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them", "my",
		"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves",
	}

	prepositions = []string{
		"aboard", "about", "above", "across", "after", "against", "along", "amid", "among", "around",
		"as", "at", "before", "behind", "below", "beneath", "beside", "between", "beyond", "but", "by",
		"concerning", "considering", "despite", "down", "during", "except", "excepting", "for", "from",
		"in", "inside", "into", "like", "near", "of", "off", "on", "onto", "out", "outside", "over",
		"past", "regarding", "round", "since", "through", "throughout", "till", "to", "toward", "under",
		"underneath", "until", "up", "upon", "with", "within", "without",
	}

	contractions = []string{
		"ain't", "aren't", "can't", "couldn't", "didn't", "doesn't", "don't", "hadn't", "hasn't",
		"haven't", "he'd", "he'll", "he's", "here's", "i'd", "i'll", "i'm", "i've", "isn't", "it's",
		"let's", "mustn't", "shan't", "she'd", "she'll", "she's", "shouldn't", "that's", "there's",
		"they'd", "they'll", "they're", "they've", "wasn't", "we'd", "we'll", "we're", "we've",
		"weren't", "what's", "where's", "who's", "won't", "wouldn't", "you'd", "you'll", "you're", "you've",
	}
)

// stopWords only holds entries longer than two characters, short function words are never filtered.
var stopWords = buildStopWords(3, pronouns, prepositions, contractions)

// termStopWords keeps every length and only applies to weighting terms.
var termStopWords = buildStopWords(1, pronouns, prepositions, contractions)

func buildStopWords(minLen int, lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, word := range list {
			if utf8.RuneCountInString(word) >= minLen {
				set[word] = struct{}{}
			}
		}
	}
	return set
}

// Normalize lowercases text and splits it on word boundaries.
// The fixed punctuation marks come back as separate tokens, other symbols are dropped.
func Normalize(text string) []string {
	lower := apostrophes.Replace(strings.ToLower(text))

	tokens := tokenRegex.FindAllString(lower, -1)
	if tokens == nil {
		return []string{}
	}

	return tokens
}

func IsPunctuation(token string) bool {
	_, ok := punctuation[token]
	return ok
}

// IsStopWord reports whether token is a stopword longer than two characters.
func IsStopWord(token string) bool {
	if utf8.RuneCountInString(token) <= 2 {
		return false
	}

	if _, ok := stopWords[token]; ok {
		return true
	}

	return english.IsStopWord(token)
}

// Terms splits a weighting text into the terms that carry weight:
// punctuation and stopwords of any length are left out.
func Terms(text string) []string {
	res := make([]string, 0)

	for _, token := range Normalize(text) {
		if IsPunctuation(token) {
			continue
		}
		if _, ok := termStopWords[token]; ok || english.IsStopWord(token) {
			continue
		}
		res = append(res, token)
	}

	return res
}

// Filter drops punctuation tokens and then stopwords, keeping order.
func Filter(tokens []string) []string {
	withoutPunct := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsPunctuation(token) {
			continue
		}
		withoutPunct = append(withoutPunct, token)
	}

	res := make([]string, 0, len(withoutPunct))
	for _, token := range withoutPunct {
		if IsStopWord(token) {
			continue
		}
		res = append(res, token)
	}

	return res
}

// Stem reduces every token to its snowball english stem. Empty stems are dropped.
func Stem(tokens []string) []string {
	res := make([]string, 0, len(tokens))

	for _, token := range tokens {
		stemmed, err := snowball.Stem(token, "english", true)
		if err != nil {
			logrus.Warnf("error stemming %q: %v", token, err)
			stemmed = token
		}

		if len(stemmed) == 0 {
			continue
		}
		res = append(res, stemmed)
	}

	return res
}

// Preprocess runs Normalize, Filter and Stem over text.
// The returned weighting text is the tokens joined by spaces, or the lowercased
// input when no token survives.
func Preprocess(text string) (string, []string) {
	tokens := Stem(Filter(Normalize(text)))

	logrus.WithField("count", len(tokens)).Debugf("processed tokens: %v", tokens)

	if len(tokens) == 0 {
		return strings.ToLower(text), tokens
	}

	return strings.Join(tokens, " "), tokens
}
