package node

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// CoinName computes the coin id: sha256(parent_coin_info || puzzle_hash || amount).
// The amount is serialized as the shortest big endian two's complement form.
func CoinName(c model.Coin) (string, error) {
	parent, err := decodeHash(c.ParentCoinInfo)
	if err != nil {
		return "", fmt.Errorf("parent coin info: %w", err)
	}
	puzzle, err := decodeHash(c.PuzzleHash)
	if err != nil {
		return "", fmt.Errorf("puzzle hash: %w", err)
	}

	buf := make([]byte, 0, 2*chainhash.HashSize+9)
	buf = append(buf, parent...)
	buf = append(buf, puzzle...)
	buf = append(buf, amountBytes(c.Amount)...)

	h := chainhash.HashH(buf)
	return hexPrefix + hex.EncodeToString(h[:]), nil
}

func decodeHash(value string) ([]byte, error) {
	raw, err := hex.DecodeString(TrimHex(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if len(raw) != chainhash.HashSize {
		return nil, fmt.Errorf("%w: hash has %d bytes", model.ErrMalformedResponse, len(raw))
	}
	return raw, nil
}

func amountBytes(amount uint64) []byte {
	if amount == 0 {
		return nil
	}
	buf := make([]byte, 9)
	binary.BigEndian.PutUint64(buf[1:], amount)
	for len(buf) > 1 && buf[0] == 0 && buf[1]&0x80 == 0 {
		buf = buf[1:]
	}
	return buf
}
