// Package paging implements a configuration-driven pagination engine for
// paged list-style API operations.
//
// Given a description of one operation — which request parameter carries the
// continuation token, which response path returns it, where the result items
// live, and how "no more pages" is signaled — the engine produces a lazy
// sequence of items that transparently issues successive requests until the
// backend is exhausted.
//
// # Configuration
//
// Each operation is described by a Config of five semantic keys, all
// optional:
//
//	cfg := paging.Config{
//	    InputToken:  []string{"Marker"},     // request parameter(s) receiving the token
//	    OutputToken: []string{"NextMarker"}, // response path(s) producing the next token
//	    LimitKey:    "MaxKeys",              // request parameter holding the page size
//	    ResultKey:   "Contents",             // response path holding the items
//	    MoreResults: "IsTruncated",          // response path flagging more pages
//	}
//
// InputToken and OutputToken may list several keys to form a composite
// token; both sides must then have the same arity, and values are paired
// positionally.
//
// # Building iterators
//
// A Registry maps operation names to configurations and builds iterators:
//
//	registry := paging.NewRegistry(map[string]paging.Config{
//	    "ListObjects": cfg,
//	}, nil)
//
//	it, err := registry.Build(op, &paging.Options{PageSize: 100})
//	if err != nil {
//	    return err
//	}
//
//	for it.Next(ctx) {
//	    handle(it.Item())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// A registry may delegate to a primary Factory, consulted first for both
// CanBuild and Build; the registry's own configuration only applies when the
// primary declines. Building an unknown operation fails with a ConfigError
// before any request is issued.
//
// # Continuation behavior
//
// The iterator resets the token before every page, honors the has-more flag
// (a falsy or absent flag ends iteration regardless of any token in the
// response), and treats missing result or token paths as absent values, not
// errors. An empty page that still carries a token is retried internally
// against a fresh clone of the caller's original request and never surfaces
// to the caller. Transport errors from the Operation propagate unchanged.
//
// Sequences are finite and not restartable; build a new iterator to iterate
// again. Map and Filter wrap a Sequence without altering the underlying
// fetch state machine.
package paging
