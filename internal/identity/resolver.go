// Package identity resolves wallet addresses to human-readable handles
// through a Zerion-style wallet metadata API.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/iqbalbaharum/token-leaderboard/internal/utils"
)

// BatchSize bounds the identifier list per request. It keeps URLs short
// and stays under the upstream's implicit batch limit.
const BatchSize = 10

type Resolver struct {
	baseUrl       string
	clientType    string
	clientVersion string
	client        *http.Client
}

func NewResolver(baseUrl string, clientType string, clientVersion string) *Resolver {
	return &Resolver{
		baseUrl:       baseUrl,
		clientType:    clientType,
		clientVersion: clientVersion,
		client:        &http.Client{},
	}
}

// ResolveHandles fetches wallet metadata for all addresses in fixed-size
// batches, all batches in flight at once, and returns an address → handle
// map. Addresses without any identity record are simply absent from the
// map. A single failed batch fails the whole resolution.
func (r *Resolver) ResolveHandles(ctx context.Context, addresses []string) (map[string]string, error) {
	chunks := utils.ChunkSlice(addresses, BatchSize)
	results := make([]*GetMetaResponse, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			meta, err := r.getWalletsMeta(ctx, chunk)
			if err != nil {
				return err
			}
			results[i] = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	handles := make(map[string]string)
	for _, meta := range results {
		if meta == nil {
			continue
		}
		for _, record := range meta.Data {
			if len(record.Identities) == 0 {
				continue
			}
			handles[record.Address] = record.Identities[0].Handle
		}
	}

	return handles, nil
}

func (r *Resolver) getWalletsMeta(ctx context.Context, identifiers []string) (*GetMetaResponse, error) {
	url := fmt.Sprintf("%s/wallet/get-meta/v1?identifiers=%s", r.baseUrl, strings.Join(identifiers, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-request-id", uuid.NewString())
	req.Header.Set("zerion-client-type", r.clientType)
	req.Header.Set("zerion-client-version", r.clientVersion)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failure retrieving wallet metadata")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failure reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("response status: %d; body: %s", resp.StatusCode, string(body))
	}

	var meta GetMetaResponse
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, errors.Wrap(err, "failure unmarshalling response body")
	}

	return &meta, nil
}
