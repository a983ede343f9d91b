// Package aggregator combines explorer and identity data into the single
// view model the page renders.
package aggregator

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/iqbalbaharum/token-leaderboard/internal/explorer"
	"github.com/iqbalbaharum/token-leaderboard/internal/format"
	"github.com/iqbalbaharum/token-leaderboard/internal/types"
)

// ErrNoHolders is returned when the explorer's first holder page is empty,
// since the token snapshot is taken from the first holder item.
var ErrNoHolders = errors.New("explorer returned no holders")

type HolderSource interface {
	GetHolders(ctx context.Context) (*explorer.HoldersPage, error)
	GetTokenCounters(ctx context.Context) (*explorer.CountersResponse, error)
}

type HandleResolver interface {
	ResolveHandles(ctx context.Context, addresses []string) (map[string]string, error)
}

type Aggregator struct {
	explorer HolderSource
	identity HandleResolver
}

func New(explorer HolderSource, identity HandleResolver) *Aggregator {
	return &Aggregator{
		explorer: explorer,
		identity: identity,
	}
}

// BuildLeaderboard fetches holders and counters concurrently, resolves
// handles for the holder addresses, and derives converted balances and
// allocation fractions. Holder order is preserved from the explorer
// response, which already ranks by balance descending. Any dependent
// failure aborts the whole build; there is no partial view.
func (a *Aggregator) BuildLeaderboard(ctx context.Context) (*types.Leaderboard, error) {
	var (
		page     *explorer.HoldersPage
		counters *explorer.CountersResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = a.explorer.GetHolders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counters, err = a.explorer.GetTokenCounters(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(page.Items) == 0 {
		return nil, ErrNoHolders
	}

	// Every item of a single-token holder list embeds the same token
	// snapshot, so the first one is canonical.
	token := page.Items[0].Token

	decimals, err := parseDecimals(token.Decimals)
	if err != nil {
		return nil, err
	}

	totalSupply, err := format.ToCommonUnits(token.TotalSupply, decimals)
	if err != nil {
		return nil, errors.Wrap(err, "failure converting total supply")
	}

	addresses := make([]string, len(page.Items))
	for i, item := range page.Items {
		addresses[i] = item.Address.Hash
	}

	handles, err := a.identity.ResolveHandles(ctx, addresses)
	if err != nil {
		return nil, errors.Wrap(err, "failure resolving handles")
	}

	holders := make([]types.HolderEntry, len(page.Items))
	for i, item := range page.Items {
		balance, err := format.ToCommonUnits(item.Value, decimals)
		if err != nil {
			return nil, errors.Wrapf(err, "failure converting balance for %s", item.Address.Hash)
		}

		// Allocation is derived from the base-unit integers, not the
		// converted balances, to keep full precision.
		allocation, err := format.Allocation(item.Value, token.TotalSupply)
		if err != nil {
			return nil, errors.Wrapf(err, "failure computing allocation for %s", item.Address.Hash)
		}

		holders[i] = types.HolderEntry{
			Rank:       i + 1,
			Address:    item.Address.Hash,
			Handle:     handles[item.Address.Hash],
			Balance:    balance,
			Allocation: allocation,
		}
	}

	holdersCount, err := parseCount(counters.TokenHoldersCount)
	if err != nil {
		return nil, errors.Wrap(err, "failure parsing holder count")
	}
	transfersCount, err := parseCount(counters.TransfersCount)
	if err != nil {
		return nil, errors.Wrap(err, "failure parsing transfer count")
	}

	return &types.Leaderboard{
		Token: types.TokenInfo{
			Address:      token.Address,
			Symbol:       token.Symbol,
			Name:         token.Name,
			Decimals:     decimals,
			TotalSupply:  token.TotalSupply,
			IconUrl:      token.IconUrl,
			ExchangeRate: token.ExchangeRate,
		},
		TotalSupply: totalSupply,
		Counters: types.Counters{
			Holders:   holdersCount,
			Transfers: transfersCount,
		},
		Holders: holders,
	}, nil
}

func parseDecimals(raw string) (int32, error) {
	if raw == "" {
		return 0, nil
	}
	decimals, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid decimals %q", raw)
	}
	if decimals < 0 {
		return 0, errors.Errorf("negative decimals %q", raw)
	}
	return int32(decimals), nil
}

func parseCount(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
