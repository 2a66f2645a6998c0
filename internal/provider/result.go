package provider

// SearchMode selects how a title search matches the query.
type SearchMode string

const (
	// SearchNearMatch prefers exact or near-exact headword matches.
	SearchNearMatch SearchMode = "nearmatch"
	// SearchFullText searches page text by relevance.
	SearchFullText SearchMode = "text"
)

func (m SearchMode) String() string { return string(m) }
