package operation

import "context"

// Document is a decoded response supporting path-based field lookup.
// GetPath returns nil when the path does not resolve.
type Document interface {
	GetPath(path string) any
}

// Operation is one invocable API request. The pagination engine treats it as
// an opaque, cloneable, mutable command: it reads and sets named parameters,
// then executes it to obtain a response Document.
type Operation interface {
	// Name returns the operation name used for configuration lookup.
	Name() string

	// Get returns the value of a named parameter, or nil when unset.
	Get(param string) any

	// Set assigns a named parameter, replacing any previous value.
	Set(param string, value any)

	// Add appends a value to a named parameter without replacing existing
	// values. The engine uses it to tag requests as iterator-originated.
	Add(param string, value any)

	// Clone returns an independent copy of the operation. Mutating the copy
	// must not affect the original.
	Clone() Operation

	// Execute issues the request and returns the decoded response.
	Execute(ctx context.Context) (Document, error)
}
