package recommender

import (
	"math"
	"strings"
	"unicode"
)

// stopwords excluded from every token stream
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {},
}

// tokenize lowercases the text, splits on every non-alphanumeric rune, drops
// stopwords and emits unigrams plus adjacent bigrams. Bigrams let phrases
// like "mechanical watch" outrank texts that only mention the words apart.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	unigrams := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stopwords[w]; skip {
			continue
		}
		unigrams = append(unigrams, w)
	}

	tokens := make([]string, 0, len(unigrams)*2)
	tokens = append(tokens, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+" "+unigrams[i+1])
	}
	return tokens
}

// termVector is a sparse token-weight vector
type termVector map[string]float64

// corpus computes TF-IDF vectors for a set of documents identified by key
type corpus struct {
	docFreq map[string]int
	docs    map[string][]string
}

func newCorpus() *corpus {
	return &corpus{
		docFreq: make(map[string]int),
		docs:    make(map[string][]string),
	}
}

// add registers one document's raw text under the given key
func (c *corpus) add(key, text string) {
	tokens := tokenize(text)
	c.docs[key] = tokens

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		c.docFreq[tok]++
	}
}

// vector returns the TF-IDF vector for a previously added document
func (c *corpus) vector(key string) termVector {
	return c.weigh(c.docs[key])
}

// vectorFor weighs arbitrary text against the corpus's document frequencies,
// used for user profiles that are not themselves corpus documents.
func (c *corpus) vectorFor(text string) termVector {
	return c.weigh(tokenize(text))
}

func (c *corpus) weigh(tokens []string) termVector {
	if len(tokens) == 0 {
		return termVector{}
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	numDocs := float64(len(c.docs))
	vec := make(termVector, len(counts))
	for tok, count := range counts {
		tf := float64(count) / total
		idf := math.Log((numDocs+1)/(float64(c.docFreq[tok])+1)) + 1
		vec[tok] = tf * idf
	}
	return vec
}

// cosine returns the cosine similarity of two sparse vectors. Either vector
// being zero yields 0, never NaN.
func cosine(a, b termVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, normA, normB float64
	for tok, wa := range a {
		normA += wa * wa
		if wb, ok := b[tok]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
