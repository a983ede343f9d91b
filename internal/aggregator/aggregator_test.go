package aggregator

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqbalbaharum/token-leaderboard/internal/explorer"
)

type stubExplorer struct {
	page        *explorer.HoldersPage
	counters    *explorer.CountersResponse
	holdersErr  error
	countersErr error
}

func (s *stubExplorer) GetHolders(ctx context.Context) (*explorer.HoldersPage, error) {
	return s.page, s.holdersErr
}

func (s *stubExplorer) GetTokenCounters(ctx context.Context) (*explorer.CountersResponse, error) {
	return s.counters, s.countersErr
}

type stubResolver struct {
	handles   map[string]string
	err       error
	requested []string
}

func (s *stubResolver) ResolveHandles(ctx context.Context, addresses []string) (map[string]string, error) {
	s.requested = addresses
	return s.handles, s.err
}

func holderItem(hash string, value string, token explorer.Token) explorer.HolderItem {
	return explorer.HolderItem{
		Address: explorer.AddressParam{Hash: hash},
		Value:   value,
		Token:   token,
	}
}

var testToken = explorer.Token{
	Address:     "0xtoken",
	Symbol:      "TKN",
	Name:        "Test Token",
	Decimals:    "0",
	TotalSupply: "100",
	Type:        "ERC-20",
}

func TestBuildLeaderboard(t *testing.T) {
	src := &stubExplorer{
		page: &explorer.HoldersPage{
			Items: []explorer.HolderItem{
				holderItem("0xaaa", "50", testToken),
				holderItem("0xbbb", "30", testToken),
				holderItem("0xccc", "20", testToken),
			},
		},
		counters: &explorer.CountersResponse{TokenHoldersCount: "3", TransfersCount: "120"},
	}
	resolver := &stubResolver{handles: map[string]string{"0xbbb": "whale.eth"}}

	board, err := New(src, resolver).BuildLeaderboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "TKN", board.Token.Symbol)
	assert.Equal(t, int32(0), board.Token.Decimals)
	assert.True(t, board.TotalSupply.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(3), board.Counters.Holders)
	assert.Equal(t, int64(120), board.Counters.Transfers)

	// Resolver must see the ordered address list.
	assert.Equal(t, []string{"0xaaa", "0xbbb", "0xccc"}, resolver.requested)

	require.Len(t, board.Holders, 3)

	wantAllocations := []string{"0.5", "0.3", "0.2"}
	wantBalances := []int64{50, 30, 20}
	for i, holder := range board.Holders {
		assert.Equal(t, i+1, holder.Rank)
		assert.True(t, holder.Balance.Equal(decimal.NewFromInt(wantBalances[i])), "balance %s", holder.Balance)
		assert.True(t, holder.Allocation.Equal(decimal.RequireFromString(wantAllocations[i])), "allocation %s", holder.Allocation)
	}

	assert.Empty(t, board.Holders[0].Handle)
	assert.Equal(t, "whale.eth", board.Holders[1].Handle)
	assert.Empty(t, board.Holders[2].Handle)
}

func TestBuildLeaderboard_AllocationFromBaseUnits(t *testing.T) {
	token := explorer.Token{
		Symbol:      "BIG",
		Decimals:    "18",
		TotalSupply: "10000000000000000000000000000",
	}
	src := &stubExplorer{
		page: &explorer.HoldersPage{
			Items: []explorer.HolderItem{
				holderItem("0xaaa", "2500000000000000000000000000", token),
			},
		},
		counters: &explorer.CountersResponse{},
	}

	board, err := New(src, &stubResolver{}).BuildLeaderboard(context.Background())
	require.NoError(t, err)

	assert.True(t, board.TotalSupply.Equal(decimal.NewFromInt(10_000_000_000)), "total supply %s", board.TotalSupply)
	assert.True(t, board.Holders[0].Allocation.Equal(decimal.RequireFromString("0.25")), "allocation %s", board.Holders[0].Allocation)

	sum := decimal.Zero
	for _, holder := range board.Holders {
		assert.True(t, holder.Allocation.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, holder.Allocation.LessThanOrEqual(decimal.NewFromInt(1)))
		sum = sum.Add(holder.Allocation)
	}
	assert.True(t, sum.LessThanOrEqual(decimal.NewFromInt(1)))
}

func TestBuildLeaderboard_EmptyHolderList(t *testing.T) {
	src := &stubExplorer{
		page:     &explorer.HoldersPage{},
		counters: &explorer.CountersResponse{},
	}

	_, err := New(src, &stubResolver{}).BuildLeaderboard(context.Background())
	assert.ErrorIs(t, err, ErrNoHolders)
}

func TestBuildLeaderboard_HoldersFetchFails(t *testing.T) {
	src := &stubExplorer{
		holdersErr: errors.New("explorer down"),
		counters:   &explorer.CountersResponse{},
	}

	_, err := New(src, &stubResolver{}).BuildLeaderboard(context.Background())
	assert.Error(t, err)
}

func TestBuildLeaderboard_CountersFetchFails(t *testing.T) {
	src := &stubExplorer{
		page: &explorer.HoldersPage{
			Items: []explorer.HolderItem{holderItem("0xaaa", "50", testToken)},
		},
		countersErr: errors.New("explorer down"),
	}

	_, err := New(src, &stubResolver{}).BuildLeaderboard(context.Background())
	assert.Error(t, err)
}

func TestBuildLeaderboard_ResolverFails(t *testing.T) {
	src := &stubExplorer{
		page: &explorer.HoldersPage{
			Items: []explorer.HolderItem{holderItem("0xaaa", "50", testToken)},
		},
		counters: &explorer.CountersResponse{},
	}
	resolver := &stubResolver{err: errors.New("identity API rejected")}

	_, err := New(src, resolver).BuildLeaderboard(context.Background())
	assert.Error(t, err)
}

func TestBuildLeaderboard_InvalidDecimals(t *testing.T) {
	token := testToken
	token.Decimals = "eighteen"
	src := &stubExplorer{
		page: &explorer.HoldersPage{
			Items: []explorer.HolderItem{holderItem("0xaaa", "50", token)},
		},
		counters: &explorer.CountersResponse{},
	}

	_, err := New(src, &stubResolver{}).BuildLeaderboard(context.Background())
	assert.Error(t, err)
}
