package paging

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ncobase/npage/operation"
)

// IteratorTagParam is the parameter added to every working request so that
// collaborators can recognize iterator-originated traffic. Its value is the
// iterator id.
const IteratorTagParam = "x-npage-iterator"

const tracerName = "github.com/ncobase/npage/paging"

// Iterator drives the request/extract/continue loop for one operation. It
// yields the flattened item sequence lazily: no page is fetched until the
// caller has consumed the previous page's items. Iterators are single-use
// and not safe for concurrent use.
type Iterator struct {
	id       string
	template operation.Operation
	working  operation.Operation
	cfg      Config
	log      logrus.FieldLogger
	tracer   trace.Tracer

	token   any
	buf     []any
	item    any
	last    operation.Document
	pages   int
	empties int
	yielded int
	done    bool
	err     error
}

// NewIterator builds an iterator bound to the operation and configuration.
// The caller's operation is preserved read-only; the iterator works on its
// own clone. Most callers should build iterators through a Registry instead.
func NewIterator(op operation.Operation, cfg Config, opts *Options) *Iterator {
	it := &Iterator{
		id:       uuid.NewString(),
		template: op,
		cfg:      cfg.merge(opts),
		tracer:   otel.Tracer(tracerName),
	}
	if opts != nil && opts.Logger != nil {
		it.log = opts.Logger
	} else {
		it.log = logrus.StandardLogger()
	}
	it.log = it.log.WithFields(logrus.Fields{
		"operation": op.Name(),
		"iterator":  it.id,
	})
	it.working = it.cloneTemplate()
	return it
}

// ID returns the iterator's identity, also carried on every working request
// under IteratorTagParam.
func (it *Iterator) ID() string { return it.id }

// Next advances to the next item, fetching further pages as needed. It
// returns false when the sequence is exhausted or an error occurred; check
// Err afterwards.
func (it *Iterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if it.cfg.Limit > 0 && it.yielded >= it.cfg.Limit {
		return false
	}

	for len(it.buf) == 0 {
		if it.done {
			return false
		}
		if err := it.fetch(ctx); err != nil {
			it.err = err
			return false
		}
	}

	it.item = it.buf[0]
	it.buf = it.buf[1:]
	it.yielded++
	return true
}

// Item returns the item produced by the last successful Next.
func (it *Iterator) Item() any { return it.item }

// Err returns the first error encountered while iterating.
func (it *Iterator) Err() error { return it.err }

// LastResult returns the raw response document of the most recent page, or
// nil before the first fetch.
func (it *Iterator) LastResult() operation.Document { return it.last }

// Pages returns the number of requests executed so far, internal retries
// included.
func (it *Iterator) Pages() int { return it.pages }

// fetch executes one page and fills the item buffer. Empty pages that still
// carry a continuation token are retried here, against a fresh clone of the
// caller's original request, without yielding control.
func (it *Iterator) fetch(ctx context.Context) error {
	for {
		items, err := it.fetchOnce(ctx)
		if err != nil {
			return err
		}

		if len(items) == 0 && it.token != nil {
			// Empty page mid-stream: the backend still signals more data.
			// Discard working-request mutations and go again with only the
			// token reapplied.
			it.empties++
			if it.cfg.MaxEmptyPages > 0 && it.empties >= it.cfg.MaxEmptyPages {
				return &EmptyPageLimitError{Operation: it.template.Name(), Pages: it.empties}
			}
			it.log.WithField("page", it.pages).Debug("empty page with continuation token, retrying")
			it.working = it.cloneTemplate()
			continue
		}

		it.empties = 0
		it.buf = items
		it.done = it.token == nil
		return nil
	}
}

// fetchOnce runs a single Fetching step: negotiate the page size, apply the
// current token, execute, extract items and compute the next token.
func (it *Iterator) fetchOnce(ctx context.Context) ([]any, error) {
	it.negotiatePageSize()

	if it.token != nil {
		if err := it.applyToken(); err != nil {
			return nil, err
		}
	}

	ctx, span := it.tracer.Start(ctx, "paging.fetch", trace.WithAttributes(
		attribute.String("paging.operation", it.template.Name()),
		attribute.String("paging.iterator_id", it.id),
		attribute.Int("paging.page", it.pages),
	))
	defer span.End()

	doc, err := it.working.Execute(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		return nil, err
	}

	it.last = doc
	it.pages++

	items := it.extractItems(doc)
	it.token = it.nextToken(doc)

	span.SetAttributes(attribute.Int("paging.items", len(items)))
	it.log.WithFields(logrus.Fields{
		"page":     it.pages,
		"items":    len(items),
		"has_next": it.token != nil,
	}).Debug("fetched page")

	return items, nil
}

// negotiatePageSize reconciles the caller's per-request limit with the
// page-size hint. When both are present the smaller wins; otherwise the
// request's own limit is left untouched.
func (it *Iterator) negotiatePageSize() {
	if !it.cfg.HasLimitKey() || it.cfg.PageSize <= 0 {
		return
	}
	requested, ok := toInt(it.template.Get(it.cfg.LimitKey))
	if !ok {
		return
	}
	effective := requested
	if it.cfg.PageSize < effective {
		effective = it.cfg.PageSize
	}
	it.working.Set(it.cfg.LimitKey, effective)
}

// applyToken injects the current token into the working request. Composite
// keys pair positionally with the token's values and must match in length.
func (it *Iterator) applyToken() error {
	keys := it.cfg.InputToken
	if len(keys) == 0 {
		return nil
	}
	if len(keys) == 1 {
		it.working.Set(keys[0], it.token)
		return nil
	}

	values, ok := it.token.([]any)
	if !ok || len(values) != len(keys) {
		n := 1
		if ok {
			n = len(values)
		}
		return &TokenShapeError{Operation: it.template.Name(), Keys: len(keys), Values: n}
	}
	for i, key := range keys {
		it.working.Set(key, values[i])
	}
	return nil
}

// extractItems reads the configured result path. Absence yields an empty
// set, never an error.
func (it *Iterator) extractItems(doc operation.Document) []any {
	if !it.cfg.HasResultKey() {
		return nil
	}
	switch v := doc.GetPath(it.cfg.ResultKey).(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// nextToken computes the continuation token from a response. The has-more
// flag, when configured and falsy or absent, forces the token absent
// regardless of any output-token configuration.
func (it *Iterator) nextToken(doc operation.Document) any {
	if it.cfg.HasMoreResults() && !isTruthy(doc.GetPath(it.cfg.MoreResults)) {
		return nil
	}
	if !it.cfg.HasOutputToken() {
		return nil
	}

	if len(it.cfg.OutputToken) == 1 {
		v := doc.GetPath(it.cfg.OutputToken[0])
		if isAbsent(v) {
			return nil
		}
		return v
	}

	values := make([]any, len(it.cfg.OutputToken))
	present := false
	for i, path := range it.cfg.OutputToken {
		values[i] = doc.GetPath(path)
		if !isAbsent(values[i]) {
			present = true
		}
	}
	if !present {
		return nil
	}
	return values
}

// cloneTemplate clones the caller's original request and tags the clone as
// iterator-originated.
func (it *Iterator) cloneTemplate() operation.Operation {
	op := it.template.Clone()
	op.Add(IteratorTagParam, it.id)
	return op
}

// isAbsent reports whether a token read counts as "no more pages".
func isAbsent(v any) bool {
	return v == nil || v == ""
}

// isTruthy interprets a has-more flag value.
func isTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "false" && x != "0"
	default:
		if n, ok := toInt(v); ok {
			return n != 0
		}
		return true
	}
}

// toInt coerces the numeric shapes a decoded request parameter can take.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case float32:
		return int(x), true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}
