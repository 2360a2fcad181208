package mode

// Mode is the retrieval strategy chosen by the planner.
type Mode string

// Planner decision constants.
const (
	// Semantic answers from the bag-of-words similarity ranking.
	Semantic Mode = "semantic_search"
	// Keyword answers from the token-overlap ranking.
	Keyword Mode = "keyword_search"
	// Hybrid answers with the stronger of both rankings.
	Hybrid Mode = "hybrid"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Hybrid || m == Semantic || m == Keyword
}

// String returns the wire representation.
func (m Mode) String() string { return string(m) }
