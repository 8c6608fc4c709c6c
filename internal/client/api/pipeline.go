package api

import (
	"bytes"
	"io"
	"net/http"
)

// RequestInterceptor observes or mutates an outgoing request immediately
// before transmission. Interceptors must not fail the request; a step that
// cannot contribute (for example, no stored credential) leaves the request
// unmodified.
type RequestInterceptor func(req *http.Request)

// ResponseInterceptor observes a response after it arrives and before the
// caller sees it. Interceptors may replace the body with an equivalent
// reader (after inspecting it) but must forward the response unchanged in
// meaning.
type ResponseInterceptor func(resp *http.Response)

// pipeline is an http.RoundTripper running an explicit ordered chain of
// request and response interceptors around a base transport. Request
// interceptors run in registration order before transmission; response
// interceptors run in registration order once a response arrives.
// Network-level failures bypass response interceptors and surface directly.
type pipeline struct {
	base   http.RoundTripper
	onReq  []RequestInterceptor
	onResp []ResponseInterceptor
}

func newPipeline(base http.RoundTripper, onReq []RequestInterceptor, onResp []ResponseInterceptor) *pipeline {
	if base == nil {
		base = http.DefaultTransport
	}
	return &pipeline{base: base, onReq: onReq, onResp: onResp}
}

func (p *pipeline) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, in := range p.onReq {
		in(req)
	}

	resp, err := p.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	for _, in := range p.onResp {
		in(resp)
	}
	return resp, nil
}

// rebuffer replaces a consumed response body so downstream readers still
// see the original bytes.
func rebuffer(resp *http.Response, body []byte) {
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
}
