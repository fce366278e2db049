// Package rest provides an operation.Operation implementation for JSON HTTP
// APIs whose list parameters travel as query values.
//
//	op := rest.NewOperation("ListObjects", server.URL+"/objects")
//	op.Set("MaxKeys", 100)
//
//	it, err := registry.Build(op, nil)
//
// A typed base query can be attached and is encoded with
// github.com/google/go-querystring; dynamic parameters set through the
// Operation interface are overlaid on top:
//
//	type listQuery struct {
//	    Prefix string `url:"prefix,omitempty"`
//	}
//	op.SetBase(&listQuery{Prefix: "logs/"})
//
// The pagination engine's iterator tag is forwarded as the X-Npage-Iterator
// header instead of a query value. Transport and decode failures are
// returned as-is; the package performs no retries.
package rest
