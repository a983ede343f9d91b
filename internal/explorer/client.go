package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Client reads holder and counter data for one fixed token address from a
// Blockscout-style explorer API. Requests are unauthenticated GETs with no
// retry; any transport, status, or decode failure propagates to the caller.
type Client struct {
	baseUrl      string
	tokenAddress string
	client       *http.Client
}

func NewClient(baseUrl string, tokenAddress string) *Client {
	return &Client{
		baseUrl:      baseUrl,
		tokenAddress: tokenAddress,
		client:       &http.Client{},
	}
}

// GetHolders returns the first page of holders, ordered by the explorer
// (balance descending).
func (c *Client) GetHolders(ctx context.Context) (*HoldersPage, error) {
	url := fmt.Sprintf("%s/api/v2/tokens/%s/holders", c.baseUrl, c.tokenAddress)

	var page HoldersPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, errors.Wrap(err, "failure retrieving token holders")
	}

	return &page, nil
}

// GetTokenCounters returns the holder and transfer counts.
func (c *Client) GetTokenCounters(ctx context.Context) (*CountersResponse, error) {
	url := fmt.Sprintf("%s/api/v2/tokens/%s/counters", c.baseUrl, c.tokenAddress)

	var counters CountersResponse
	if err := c.getJSON(ctx, url, &counters); err != nil {
		return nil, errors.Wrap(err, "failure retrieving token counters")
	}

	return &counters, nil
}

func (c *Client) getJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failure reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("response status: %d; body: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.Wrap(err, "failure unmarshalling response body")
	}

	return nil
}
