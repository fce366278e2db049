package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/ncobase/npage/operation"
	"github.com/ncobase/npage/paging"
)

// IteratorTagHeader carries the pagination engine's iterator id on outgoing
// requests.
const IteratorTagHeader = "X-Npage-Iterator"

// Operation is an operation.Operation over a JSON HTTP endpoint. Parameters
// travel as URL query values; responses must decode into a JSON object.
type Operation struct {
	name     string
	method   string
	endpoint string
	client   *http.Client
	header   http.Header
	base     any
	params   map[string]any
}

// NewOperation builds a GET operation against endpoint.
func NewOperation(name, endpoint string) *Operation {
	return &Operation{
		name:     name,
		method:   http.MethodGet,
		endpoint: endpoint,
		client:   http.DefaultClient,
		header:   make(http.Header),
		params:   make(map[string]any),
	}
}

// SetMethod overrides the HTTP method.
func (o *Operation) SetMethod(method string) { o.method = method }

// SetClient overrides the HTTP client.
func (o *Operation) SetClient(client *http.Client) { o.client = client }

// SetBase attaches a typed base query, encoded with go-querystring on every
// execute. The value is shared across clones and must not be mutated after
// it is set.
func (o *Operation) SetBase(base any) { o.base = base }

// SetHeader sets a static request header.
func (o *Operation) SetHeader(key, value string) { o.header.Set(key, value) }

// Name implements operation.Operation.
func (o *Operation) Name() string { return o.name }

// Get implements operation.Operation.
func (o *Operation) Get(param string) any { return o.params[param] }

// Set implements operation.Operation.
func (o *Operation) Set(param string, value any) { o.params[param] = value }

// Add implements operation.Operation.
func (o *Operation) Add(param string, value any) {
	current, ok := o.params[param]
	if !ok {
		o.params[param] = value
		return
	}
	if list, ok := current.([]any); ok {
		o.params[param] = append(list, value)
		return
	}
	o.params[param] = []any{current, value}
}

// Clone implements operation.Operation.
func (o *Operation) Clone() operation.Operation {
	params := make(map[string]any, len(o.params))
	for k, v := range o.params {
		if list, ok := v.([]any); ok {
			params[k] = append([]any(nil), list...)
			continue
		}
		params[k] = v
	}
	return &Operation{
		name:     o.name,
		method:   o.method,
		endpoint: o.endpoint,
		client:   o.client,
		header:   o.header.Clone(),
		base:     o.base,
		params:   params,
	}
}

// Execute implements operation.Operation. Non-2xx responses and decode
// failures are errors; they are never retried here.
func (o *Operation) Execute(ctx context.Context) (operation.Document, error) {
	u, err := url.Parse(o.endpoint)
	if err != nil {
		return nil, fmt.Errorf("rest: invalid endpoint for %s: %w", o.name, err)
	}

	q := u.Query()
	if o.base != nil {
		base, err := query.Values(o.base)
		if err != nil {
			return nil, fmt.Errorf("rest: encode base query for %s: %w", o.name, err)
		}
		for key, values := range base {
			for _, value := range values {
				q.Add(key, value)
			}
		}
	}

	header := o.header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	for param, value := range o.params {
		if value == nil {
			continue
		}
		if param == paging.IteratorTagParam {
			for _, tag := range flatten(value) {
				header.Add(IteratorTagHeader, tag)
			}
			continue
		}
		q.Del(param)
		for _, v := range flatten(value) {
			q.Add(param, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, o.method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("rest: build request for %s: %w", o.name, err)
	}
	req.Header = header
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("rest: %s %s: unexpected status %s", o.method, o.name, resp.Status)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("rest: decode response for %s: %w", o.name, err)
	}
	return operation.MapDocument(body), nil
}

// flatten renders a parameter value, scalar or multi-valued, as strings.
func flatten(value any) []string {
	if list, ok := value.([]any); ok {
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return []string{fmt.Sprint(value)}
}
