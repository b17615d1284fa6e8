package model

// SearchResult holds whichever entity a search token resolved to. Exactly one field is set.
type SearchResult struct {
	Address     *Address     `json:"address,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Block       *FullBlock   `json:"block,omitempty"`
}
