package vector

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/polyglotdb/coordinator/adapters"
	"github.com/polyglotdb/coordinator/adapters/httptransport"
	internalhttp "github.com/polyglotdb/coordinator/http"
)

// RemoteClient is the wire-protocol counterpart to Adapter: a vector store reached over HTTP,
// e.g. a managed embedding database. Concrete request/response schemas are store-specific and out
// of scope; this gives a future implementation the retry-wired transport to build on.
type RemoteClient struct {
	transport *httptransport.Transport
}

// NewRemoteClient wires an HTTP-backed vector store client through the coordinator's retryable
// HTTP client and retry policy.
func NewRemoteClient(client internalhttp.IRetryableClient, baseURL string, logger logr.Logger, retryPolicy *internalhttp.RetryPolicyConfiguration) *RemoteClient {
	return &RemoteClient{transport: httptransport.New(client, baseURL, logger, retryPolicy)}
}

type nearestNeighborsRequest struct {
	Collection string         `json:"collection"`
	Query      []float32      `json:"query"`
	TopK       int            `json:"top_k"`
	Filter     map[string]any `json:"filter,omitempty"`
}

type nearestNeighborsResponse struct {
	Results []adapters.NeighborResult `json:"results"`
}

// NearestNeighbors POSTs a similarity search to the remote vector store.
func (c *RemoteClient) NearestNeighbors(ctx context.Context, collection string, query []float32, topK int, filter map[string]any) ([]adapters.NeighborResult, error) {
	var resp nearestNeighborsResponse
	_, err := c.transport.DoJSON(ctx, "POST", "/collections/"+collection+"/search", nearestNeighborsRequest{
		Collection: collection,
		Query:      query,
		TopK:       topK,
		Filter:     filter,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type ensureCollectionRequest struct {
	Dimension int `json:"dimension"`
}

// EnsureCollection PUTs an idempotent collection-creation request.
func (c *RemoteClient) EnsureCollection(ctx context.Context, name string, dimension int) error {
	_, err := c.transport.DoJSON(ctx, "PUT", "/collections/"+name, ensureCollectionRequest{Dimension: dimension}, nil)
	return err
}
