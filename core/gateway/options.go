package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// requestOptions are the recognized per-request fields: method, headers and
// body. Anything else belongs on the context or the http.Client.
type requestOptions struct {
	method  string
	headers http.Header
	body    io.Reader
	bodyErr error
}

// RequestOption configures a single gateway request.
type RequestOption func(*requestOptions)

// WithMethod sets the HTTP method; GET is the default.
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		if method != "" {
			o.method = method
		}
	}
}

// WithHeader adds a caller header. Caller headers overlay the gateway's
// defaults, except Authorization which is always token-derived.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Set(key, value)
	}
}

// WithHeaders merges a full header set, with the same overlay rule as
// WithHeader.
func WithHeaders(headers http.Header) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		for key, values := range headers {
			for _, value := range values {
				o.headers.Add(key, value)
			}
		}
	}
}

// WithBody sets a raw request body.
func WithBody(body io.Reader) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithJSONBody marshals v as the request body. Marshal failures surface
// from Request before any network activity.
func WithJSONBody(v any) RequestOption {
	return func(o *requestOptions) {
		data, err := json.Marshal(v)
		if err != nil {
			o.bodyErr = err
			return
		}
		o.body = bytes.NewReader(data)
	}
}

func applyRequestOptions(opts []RequestOption) requestOptions {
	options := requestOptions{method: http.MethodGet}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
