package identity

type GetMetaResponse struct {
	Data []WalletMeta `json:"data"`
}

type WalletMeta struct {
	Address    string     `json:"address"`
	Identities []Identity `json:"identities"`
}

type Identity struct {
	Provider string `json:"provider"`
	Address  string `json:"address"`
	Handle   string `json:"handle"`
}
