package document

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/adapters/httptransport"
	"github.com/polyglotdb/coordinator/commonerrors"
	internalhttp "github.com/polyglotdb/coordinator/http"
)

// RemoteClient is the wire-protocol counterpart to Adapter: a document store reached over HTTP
// rather than held in memory. It implements only the subset of adapters.DocumentCapable that does
// not depend on a concrete document-store wire format, giving a future implementation a typed seam to fill in.
type RemoteClient struct {
	transport *httptransport.Transport
}

// NewRemoteClient wires an HTTP-backed document store client through the coordinator's retryable
// HTTP client and retry policy.
func NewRemoteClient(client internalhttp.IRetryableClient, baseURL string, logger logr.Logger, retryPolicy *internalhttp.RetryPolicyConfiguration) *RemoteClient {
	return &RemoteClient{transport: httptransport.New(client, baseURL, logger, retryPolicy)}
}

type writeWithRevisionRequest struct {
	Record         adapters.Record `json:"record"`
	ParentRevision string          `json:"parent_revision,omitempty"`
}

type writeWithRevisionResponse struct {
	Revision string `json:"revision"`
	Conflict bool   `json:"conflict"`
}

// WriteWithRevision POSTs the record to the remote store's revisioned-write endpoint.
func (c *RemoteClient) WriteWithRevision(ctx context.Context, record adapters.Record, parentRevision string) (string, bool, error) {
	var resp writeWithRevisionResponse
	_, err := c.transport.DoJSON(ctx, "POST", "/documents/"+record.ID+"/revisions", writeWithRevisionRequest{
		Record:         record,
		ParentRevision: parentRevision,
	}, &resp)
	if err != nil {
		return "", false, err
	}
	return resp.Revision, resp.Conflict, nil
}

// ReadOne GETs a single document by id. A 404 from the store is absence, not an error.
func (c *RemoteClient) ReadOne(ctx context.Context, id string, projection []string) (adapters.Record, bool, error) {
	var rec adapters.Record
	_, err := c.transport.DoJSON(ctx, "GET", "/documents/"+id, nil, &rec)
	if commonerrors.Any(err, commonerrors.ErrNotFound) {
		return adapters.Record{}, false, nil
	}
	if err != nil {
		return adapters.Record{}, false, err
	}
	return rec, true, nil
}
