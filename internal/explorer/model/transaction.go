// Package model defines domain models of the coin explorer.
package model

import "time"

// SentinelSender marks transactions without an identifiable sender, such as reward coins.
const SentinelSender = " "

// LinkState describes how far a transaction progressed through the create/remove lifecycle.
type LinkState string

var (
	// Unlinked marks a persisted transaction whose parent link has not been written.
	Unlinked LinkState = "unlinked"
	// Linked marks a transaction recorded in its parent's outputs.
	Linked LinkState = "linked"
	// Removed marks a deleted transaction.
	Removed LinkState = "removed"
)

// Transaction is a logical spend reconstructed from coin additions and removals.
type Transaction struct {
	TransactionID       string              `json:"transaction_id"`
	CreatedAt           time.Time           `json:"created_at"`
	ConfirmationBlock   uint64              `json:"confirmation_block"`
	Amount              uint64              `json:"amount"`
	ConfirmationsNumber uint64              `json:"confirmations_number"`
	Input               *Coin               `json:"input,omitempty"`
	Outputs             []TransactionOutput `json:"outputs"`
	Sender              string              `json:"sender"`
	Receiver            string              `json:"receiver"`
}

// HasSender reports whether the sender is a real address.
func (t Transaction) HasSender() bool {
	return t.Sender != SentinelSender && t.Sender != ""
}

// TransactionOutput is a link appended to a parent transaction when a child spends its coin.
type TransactionOutput struct {
	TransactionID      string `json:"-"`
	ChildTransactionID string `json:"-"`
	Address            string `json:"address"`
	Amount             uint64 `json:"amount"`
}

// TransactionSummary is the projection served by transaction listings.
type TransactionSummary struct {
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	Sender        string    `json:"sender"`
	Receiver      string    `json:"receiver"`
	Amount        uint64    `json:"amount"`
}

// DailyTransactions counts transactions created on one UTC calendar day.
type DailyTransactions struct {
	Day               string `json:"_id"`
	TransactionsCount uint64 `json:"transactions_count"`
}
