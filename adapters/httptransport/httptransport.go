// Package httptransport is the shared seam between the in-memory store adapters and a real wire
// protocol: a thin JSON-over-HTTP request helper built on http.IRetryableClient, so that a
// concrete document or vector store client only has to supply its own request/response shapes
// and endpoint paths. Concrete wire payload formats are out of scope; this package is the scaffold a future client plugs into.
package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/commonerrors"
	internalhttp "github.com/polyglotdb/coordinator/http"
	httperrors "github.com/polyglotdb/coordinator/http/errors"
	"github.com/polyglotdb/coordinator/url"
)

// Transport wraps an http.IRetryableClient with a base URL and the coordinator's own retry
// policy, so each store-specific client just builds request bodies.
type Transport struct {
	client  internalhttp.IRetryableClient
	baseURL string
	logger  logr.Logger
	retry   *internalhttp.RetryPolicyConfiguration
}

// New constructs a Transport. baseURL should have no trailing slash. retryPolicy may be nil, in
// which case the exponential-backoff default is used (matching the adapters' general retry
// posture of retrying transient failures only).
func New(client internalhttp.IRetryableClient, baseURL string, logger logr.Logger, retryPolicy *internalhttp.RetryPolicyConfiguration) *Transport {
	if retryPolicy == nil {
		retryPolicy = internalhttp.DefaultExponentialBackoffRetryPolicyConfiguration()
	}
	return &Transport{client: client, baseURL: baseURL, logger: logger, retry: retryPolicy}
}

// DoJSON issues method+path with body marshalled as JSON (if non-nil) and unmarshal the response
// body into out (if non-nil), retrying transient failures via internalhttp.RetryOnError.
func (t *Transport) DoJSON(ctx context.Context, method, path string, body any, out any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, commonerrors.WrapError(commonerrors.ErrMarshalling, err, "marshalling request body")
		}
	}

	target, err := url.JoinPaths(t.baseURL, path)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	err = internalhttp.RetryOnError(ctx, t.logger, t.retry, func() error {
		req, rErr := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
		if rErr != nil {
			return commonerrors.WrapError(commonerrors.ErrUnexpected, rErr, "building request")
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		r, dErr := t.client.Do(req)
		if dErr != nil {
			if ctxErr := commonerrors.ConvertContextError(ctx.Err()); ctxErr != nil {
				return ctxErr
			}
			// The client gave up (network failure or retries exhausted): a transient transport error.
			return commonerrors.WrapError(commonerrors.ErrUnavailable, dErr, "sending request")
		}
		resp = r
		if mappedErr := httperrors.MapErrorToHTTPResponseCode(r.StatusCode); mappedErr != nil {
			return commonerrors.Newf(mappedErr, "store returned status %d", r.StatusCode)
		}
		return nil
	}, fmt.Sprintf("%s %s", method, path), commonerrors.ErrUnavailable, commonerrors.ErrTimeout, commonerrors.ErrCancelled)
	if err != nil {
		return resp, err
	}

	if out == nil || resp == nil || resp.Body == nil {
		return resp, nil
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "reading response body")
	}
	if len(raw) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp, commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unmarshalling response body")
	}
	return resp, nil
}
