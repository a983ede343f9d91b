package types

import "github.com/shopspring/decimal"

// TokenInfo is an immutable snapshot of the token's metadata, taken from
// the explorer response once per page load.
type TokenInfo struct {
	Address      string `json:"address"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Decimals     int32  `json:"decimals"`
	TotalSupply  string `json:"total_supply"`
	IconUrl      string `json:"icon_url,omitempty"`
	ExchangeRate string `json:"exchange_rate,omitempty"`
}

// HolderEntry is one row of the leaderboard. Handle is empty when the
// identity service had no record for the address.
type HolderEntry struct {
	Rank       int             `json:"rank"`
	Address    string          `json:"address"`
	Handle     string          `json:"handle,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
	Allocation decimal.Decimal `json:"allocation"`
}

// Counters are the aggregate scalars shown in the stats cells.
type Counters struct {
	Holders   int64 `json:"holders"`
	Transfers int64 `json:"transfers"`
}

// Leaderboard is the full view model consumed by the presentation layer.
// It is built per request and discarded after render.
type Leaderboard struct {
	Token       TokenInfo       `json:"token"`
	TotalSupply decimal.Decimal `json:"total_supply"`
	Counters    Counters        `json:"counters"`
	Holders     []HolderEntry   `json:"holders"`
}
