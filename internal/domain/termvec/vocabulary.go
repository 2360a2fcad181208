package termvec

// Vocabulary is the ordered set of semantic tokens seen in a corpus.
// The position of a term is its dimension in every Vector built from it.
// A Vocabulary is immutable once built and safe for concurrent reads.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary scans texts front-to-back with the semantic tokenizer and
// appends each term the first time it is seen.
func BuildVocabulary(texts []string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, text := range texts {
		for _, tok := range SemanticTokens(text) {
			if _, ok := v.index[tok]; ok {
				continue
			}
			v.index[tok] = len(v.terms)
			v.terms = append(v.terms, tok)
		}
	}
	return v
}

// Len returns the number of terms (vector dimension).
func (v *Vocabulary) Len() int { return len(v.terms) }

// IndexOf returns the dimension of term, or -1 if it is unknown.
func (v *Vocabulary) IndexOf(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	return -1
}

// Terms returns a copy of the terms in first-seen order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Vectorize builds the term-frequency vector of text.
// Terms missing from the vocabulary are ignored.
func (v *Vocabulary) Vectorize(text string) Vector {
	vec := make(Vector, len(v.terms))
	for _, tok := range SemanticTokens(text) {
		if i, ok := v.index[tok]; ok {
			vec[i]++
		}
	}
	return vec
}
