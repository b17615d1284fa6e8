package model

// Coin identifies a spendable unit by its parent, locking puzzle and value.
type Coin struct {
	ParentCoinInfo string `json:"parent_coin_info"`
	PuzzleHash     string `json:"puzzle_hash"`
	Amount         uint64 `json:"amount"`
}

// CoinRecord is a coin together with its confirmation and spend state.
type CoinRecord struct {
	Coin                Coin   `json:"coin"`
	ConfirmedBlockIndex uint64 `json:"confirmed_block_index"`
	SpentBlockIndex     uint64 `json:"spent_block_index"`
	Spent               bool   `json:"spent"`
	Coinbase            bool   `json:"coinbase"`
	Timestamp           int64  `json:"timestamp"`
}

// AdditionsAndRemovals lists the coins created and spent by one block.
type AdditionsAndRemovals struct {
	Additions []CoinRecord `json:"additions"`
	Removals  []CoinRecord `json:"removals"`
}
