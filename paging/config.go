package paging

// Config describes how one operation paginates. Every key is optional; an
// empty string or nil slice means "not configured". InputToken and
// OutputToken may carry several keys to form a composite token, in which
// case both must have the same arity.
type Config struct {
	// InputToken names the request parameter(s) that receive the
	// continuation token.
	InputToken []string `json:"input_token" yaml:"input_token" validate:"dive,required"`

	// OutputToken names the response path(s) that produce the next token.
	OutputToken []string `json:"output_token" yaml:"output_token" validate:"dive,required"`

	// LimitKey names the request parameter that holds the per-page size.
	LimitKey string `json:"limit_key" yaml:"limit_key"`

	// ResultKey names the response path that holds the page's items.
	ResultKey string `json:"result_key" yaml:"result_key"`

	// MoreResults names the response path that flags whether further pages
	// exist. When it resolves to a falsy or absent value the next token is
	// forced absent regardless of OutputToken.
	MoreResults string `json:"more_results" yaml:"more_results"`

	// Limit caps the total number of items yielded across all pages.
	// Zero means unlimited.
	Limit int `json:"limit" yaml:"limit" validate:"gte=0"`

	// PageSize is the desired per-page size hint. It only takes effect when
	// LimitKey is configured and the caller's request already carries a
	// numeric value for it; the smaller of the two wins.
	PageSize int `json:"page_size" yaml:"page_size" validate:"gte=0"`

	// MaxEmptyPages bounds consecutive empty pages that still carry a
	// continuation token. Zero preserves the upstream contract of retrying
	// without bound.
	MaxEmptyPages int `json:"max_empty_pages" yaml:"max_empty_pages" validate:"gte=0"`
}

// HasInputToken reports whether a token can be applied to requests.
func (c Config) HasInputToken() bool { return len(c.InputToken) > 0 }

// HasOutputToken reports whether a next token can be read from responses.
func (c Config) HasOutputToken() bool { return len(c.OutputToken) > 0 }

// HasLimitKey reports whether page-size negotiation applies.
func (c Config) HasLimitKey() bool { return c.LimitKey != "" }

// HasResultKey reports whether items can be extracted from responses.
func (c Config) HasResultKey() bool { return c.ResultKey != "" }

// HasMoreResults reports whether a has-more flag gates the next token.
func (c Config) HasMoreResults() bool { return c.MoreResults != "" }

// merge returns the config with caller options applied on top. Caller
// options win over configured values.
func (c Config) merge(opts *Options) Config {
	if opts == nil {
		return c
	}
	if opts.Limit > 0 {
		c.Limit = opts.Limit
	}
	if opts.PageSize > 0 {
		c.PageSize = opts.PageSize
	}
	if opts.MaxEmptyPages > 0 {
		c.MaxEmptyPages = opts.MaxEmptyPages
	}
	return c
}
