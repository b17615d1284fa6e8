package node

import (
	"strings"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

const hexPrefix = "0x"

// PrefixHex adds the 0x prefix to a non-empty hex string that lacks it.
func PrefixHex(value string) string {
	if value == "" || strings.HasPrefix(value, hexPrefix) {
		return value
	}
	return hexPrefix + value
}

// TrimHex drops the 0x prefix if present.
func TrimHex(value string) string {
	return strings.TrimPrefix(value, hexPrefix)
}

func normalizeCoin(c *model.Coin) {
	c.ParentCoinInfo = PrefixHex(c.ParentCoinInfo)
	c.PuzzleHash = PrefixHex(c.PuzzleHash)
}

func normalizeCoins(coins []model.Coin) {
	for i := range coins {
		normalizeCoin(&coins[i])
	}
}

func normalizeBlockRecord(r *model.BlockRecord) {
	r.HeaderHash = PrefixHex(r.HeaderHash)
	r.PrevHash = PrefixHex(r.PrevHash)
	r.PoolPuzzleHash = PrefixHex(r.PoolPuzzleHash)
	r.FarmerPuzzleHash = PrefixHex(r.FarmerPuzzleHash)
	if r.PrevTransactionBlockHash != nil {
		prefixed := PrefixHex(*r.PrevTransactionBlockHash)
		r.PrevTransactionBlockHash = &prefixed
	}
	normalizeCoins(r.RewardClaimsIncorporated)
}

func normalizeFullBlock(b *model.FullBlock) {
	b.HeaderHash = PrefixHex(b.HeaderHash)
	if b.TransactionsInfo != nil {
		normalizeCoins(b.TransactionsInfo.RewardClaimsIncorporated)
	}
}
