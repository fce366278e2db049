package paging

import "github.com/sirupsen/logrus"

// Options carries caller-side iterator tuning supplied at build time. Zero
// values leave the registered configuration untouched.
type Options struct {
	// Limit caps the total number of items yielded.
	Limit int

	// PageSize is the per-page size hint used during page-size negotiation.
	PageSize int

	// MaxEmptyPages bounds consecutive empty pages carrying a token.
	MaxEmptyPages int

	// Logger receives per-page debug output. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}
