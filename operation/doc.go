// Package operation defines the contracts between the pagination engine and
// the API client that actually executes requests.
//
// The engine never talks to a transport directly. It drives an Operation: an
// opaque, cloneable command with named parameters that can be executed to
// produce a Document. Responses are likewise opaque; the engine only reads
// them through path-based lookup.
//
// # Operation
//
// An Operation represents one invocable request:
//
//	op := rest.NewOperation("ListObjects", "https://api.example.com/objects")
//	op.Set("MaxKeys", 100)
//
//	doc, err := op.Execute(ctx)
//
// Implementations must support cloning to an independent copy: the engine
// keeps the caller's original request pristine and mutates only its own
// working clone.
//
// # Document
//
// A Document is a decoded response supporting dotted-path lookup:
//
//	doc.GetPath("Contents")            // top-level field
//	doc.GetPath("Result.Items")        // nested field
//	doc.GetPath("Pages.0.NextToken")   // slice index
//
// Absent paths resolve to nil; absence is a value, not an error.
//
// MapDocument adapts any JSON-decoded map[string]any into a Document, which
// covers the common case of JSON HTTP APIs.
package operation
