// Package termvec implements the bag-of-words model behind semantic ranking:
// tokenization, corpus vocabulary, term-frequency vectors and cosine similarity.
package termvec

import (
	"strings"
	"unicode"
)

// Minimum token lengths for the two tokenization policies.
const (
	// SemanticMinLength drops tokens of two characters or fewer.
	SemanticMinLength = 3
	// KeywordMinLength keeps every non-empty token.
	KeywordMinLength = 1
)

// isWordRune reports ASCII letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// isSpace covers Unicode whitespace plus the byte order mark, so words
// joined by NBSP or similar separators still split.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// stripNonWord drops every rune that is neither a word rune nor whitespace.
func stripNonWord(r rune) rune {
	if isWordRune(r) || isSpace(r) {
		return r
	}
	return -1
}

// Tokenize lowercases text, strips everything except word characters and
// whitespace, splits on whitespace runs and drops tokens shorter than minLength.
// Token order follows the input. Empty input yields an empty slice.
func Tokenize(text string, minLength int) []string {
	cleaned := strings.Map(stripNonWord, strings.ToLower(text))
	fields := strings.FieldsFunc(cleaned, isSpace)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// SemanticTokens tokenizes text with the semantic policy.
func SemanticTokens(text string) []string { return Tokenize(text, SemanticMinLength) }

// KeywordTokens tokenizes text with the keyword policy.
func KeywordTokens(text string) []string { return Tokenize(text, KeywordMinLength) }
