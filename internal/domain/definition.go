package domain

// Options tunes a single resolution.
type Options struct {
	// ExactMatch is reserved. Resolution always tries a near-match search
	// before falling back to full text.
	ExactMatch bool
	Hyperlinks HyperlinkStyle
}

// Definition is the outcome of a successful resolution.
type Definition struct {
	Word       string
	Category   string
	Definition string
	Gender     Gender
}

// Section is an extracted etymology or synonym list for a headword.
type Section struct {
	Word string
	Kind SectionKind
	Text string
}

// ResolverConfig holds the tunables of the definition resolver.
type ResolverConfig struct {
	// MaxHops bounds the redirects followed by a single resolution.
	MaxHops int
	// WikiURL is the article base used for html links. "{lang}" is
	// replaced with the language code.
	WikiURL string
}
