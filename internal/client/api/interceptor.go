package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/common"
	"github.com/minsu-cho/sajubook/internal/logging"
)

// BearerAuth returns a request interceptor that reads the session store and,
// when an access token is present, sets the bearer authorization header.
// Without a token the request proceeds anonymously and unmodified; the
// backend rejects it if authentication was required. A store read failure is
// logged and also degrades to an anonymous request.
func BearerAuth(store session.Store, log logging.Logger) RequestInterceptor {
	return func(req *http.Request) {
		sess, err := store.Get(req.Context())
		if err != nil {
			log.Warn(req.Context(), "session read failed, sending request anonymously", "error", err)
			return
		}
		if !sess.LoggedIn() {
			return
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+sess.AccessToken)
	}
}

// RequestID returns a request interceptor stamping each outgoing request
// with a fresh correlation id, unless the caller already set one.
func RequestID() RequestInterceptor {
	return func(req *http.Request) {
		if req.Header.Get(common.RequestIDHeaderName) == "" {
			req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		}
	}
}

// ObserveFailures returns a response interceptor that logs the backend
// error payload of every failed response for diagnostics, then forwards
// the response to the caller unchanged. It never retries and never
// redirects; recovery policy stays with the caller.
func ObserveFailures(log logging.Logger) ResponseInterceptor {
	return func(resp *http.Response) {
		if resp.StatusCode < http.StatusBadRequest {
			return
		}

		body := readErrorBody(resp)
		rebuffer(resp, body)

		apiErr := decodeAPIError(resp, body)
		log.Error(resp.Request.Context(), "api request failed",
			"method", resp.Request.Method,
			"path", resp.Request.URL.Path,
			"status", apiErr.Status,
			"code", apiErr.Code,
			"message", apiErr.Message,
			"request_id", resp.Request.Header.Get(common.RequestIDHeaderName),
		)
	}
}
