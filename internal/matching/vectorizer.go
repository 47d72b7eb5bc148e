package matching

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// errEmptyVocabulary is returned when every document reduces to nothing
// after tokenization and stop-word removal. Callers treat it as "the
// semantic pass contributes no matches", never as a failure.
var errEmptyVocabulary = errors.New("matching: empty vocabulary after stop-word removal")

// englishStopWords are common English words excluded from the TF-IDF
// vocabulary. Skill names are short phrases, so the list only needs to cover
// the connective words that actually appear in them.
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her",
		"here", "hers", "him", "his", "how", "i", "if", "in", "into", "is",
		"it", "its", "itself", "just", "me", "more", "most", "my", "no",
		"nor", "not", "now", "of", "off", "on", "once", "only", "or",
		"other", "our", "ours", "out", "over", "own", "same", "she",
		"should", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was", "we",
		"were", "what", "when", "where", "which", "while", "who", "whom",
		"why", "will", "with", "would", "you", "your", "yours",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}

// tfidfVectorizer maps short skill phrases into a term-frequency /
// inverse-document-frequency space using unigrams and bigrams. The
// vocabulary is fitted from one set of documents and is immutable
// afterwards, so a vectorizer is only ever used within a single scoring
// call.
type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// tokenize lowercases a document and splits it into alphanumeric tokens of
// at least two characters, dropping English stop words.
func tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	tokens := strings.FieldsFunc(doc, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := tokens[:0]
	for _, t := range tokens {
		if len(t) < 2 {
			continue
		}
		if _, stop := englishStopWords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ngrams returns the unigrams and bigrams of a token sequence.
func ngrams(tokens []string) []string {
	grams := make([]string, 0, 2*len(tokens))
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

// newTFIDFVectorizer fits a vectorizer on the given documents. It returns
// errEmptyVocabulary when no terms survive preprocessing.
func newTFIDFVectorizer(docs []string) (*tfidfVectorizer, error) {
	vocabulary := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		grams := ngrams(tokenize(doc))
		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			if _, ok := vocabulary[g]; !ok {
				vocabulary[g] = len(vocabulary)
			}
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				docFreq[g]++
			}
		}
	}

	if len(vocabulary) == 0 {
		return nil, errEmptyVocabulary
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocabulary))
	for term, idx := range vocabulary {
		idf[idx] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return &tfidfVectorizer{vocabulary: vocabulary, idf: idf}, nil
}

// transform converts a document into an L2-normalized TF-IDF vector over the
// fitted vocabulary. Terms outside the vocabulary are ignored; a document
// with no in-vocabulary terms yields the zero vector.
func (v *tfidfVectorizer) transform(doc string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, g := range ngrams(tokenize(doc)) {
		if idx, ok := v.vocabulary[g]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// cosineSimilarity computes the cosine of the angle between two vectors of
// equal length. Either vector being zero yields 0.
func cosineSimilarity(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}
