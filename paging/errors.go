package paging

import "fmt"

// ConfigError indicates that neither the primary factory nor the registry's
// own configuration can build an iterator for an operation name. It is
// returned at build time, never during iteration.
type ConfigError struct {
	Operation string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("paging: no iterator available for operation %q", e.Operation)
}

// TokenShapeError indicates a composite token arity mismatch between the
// configured input token keys and the current token value. It aborts the
// page before any request is sent.
type TokenShapeError struct {
	Operation string
	Keys      int
	Values    int
}

func (e *TokenShapeError) Error() string {
	return fmt.Sprintf(
		"paging: iterator token definition and current token value are incompatible for operation %q (%d keys, %d values)",
		e.Operation, e.Keys, e.Values)
}

// EmptyPageLimitError indicates that the iterator gave up after the
// configured number of consecutive empty pages that still carried a
// continuation token. It is only returned when MaxEmptyPages is set.
type EmptyPageLimitError struct {
	Operation string
	Pages     int
}

func (e *EmptyPageLimitError) Error() string {
	return fmt.Sprintf("paging: aborted operation %q after %d consecutive empty pages with a continuation token",
		e.Operation, e.Pages)
}
