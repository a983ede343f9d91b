package explorer

// Response models for the Blockscout v2 token endpoints. Numeric fields
// arrive as strings because balances and supplies exceed 64-bit range.

type HoldersPage struct {
	Items          []HolderItem    `json:"items"`
	NextPageParams *NextPageParams `json:"next_page_params"`
}

type HolderItem struct {
	Address AddressParam `json:"address"`
	Value   string       `json:"value"`
	TokenID string       `json:"token_id,omitempty"`
	Token   Token        `json:"token"`
}

type AddressParam struct {
	Hash       string `json:"hash"`
	Name       string `json:"name,omitempty"`
	IsContract bool   `json:"is_contract,omitempty"`
}

type Token struct {
	Address      string `json:"address"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Decimals     string `json:"decimals"`
	TotalSupply  string `json:"total_supply"`
	Holders      string `json:"holders"`
	Type         string `json:"type"`
	IconUrl      string `json:"icon_url,omitempty"`
	ExchangeRate string `json:"exchange_rate,omitempty"`
}

// NextPageParams is decoded but never followed; only the first page of
// holders is rendered.
type NextPageParams struct {
	AddressHash string `json:"address_hash"`
	ItemsCount  int    `json:"items_count"`
	Value       string `json:"value"`
}

type CountersResponse struct {
	TokenHoldersCount string `json:"token_holders_count"`
	TransfersCount    string `json:"transfers_count"`
}
