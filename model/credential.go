package model

// Credential is a seller's API access to one marketplace, decrypted.
type Credential struct {
	SellerID    uint64 `db:"seller_id"`
	Marketplace string `db:"marketplace"`
	ClientID    string `db:"client_id"`
	APIKey      string `db:"api_key"`
}
