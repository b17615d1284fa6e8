package model

import "time"

// Role tells which side of a transaction an address entry belongs to.
type Role string

var (
	RoleSender   Role = "sender"
	RoleReceiver Role = "receiver"
)

// AddressEntry is one row of the per-address transaction index.
type AddressEntry struct {
	Address       string
	TransactionID string
	Role          Role
	Amount        uint64
	CreatedAt     time.Time
}

// Address is the directory view of a single address.
type Address struct {
	Address      string   `json:"address"`
	Balance      int64    `json:"balance"`
	Received     uint64   `json:"received"`
	Sent         uint64   `json:"sent"`
	Transactions []string `json:"transactions"`
}

// Supply aggregates value held by all indexed addresses.
type Supply struct {
	CirculatingSupply uint64 `json:"circulating_supply"`
}
