package node

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

const puzzleHashLength = 32

// AddressCodec converts puzzle hashes to bech32m addresses and back.
type AddressCodec struct {
	prefix string
}

// NewAddressCodec constructs an AddressCodec for the human readable prefix.
func NewAddressCodec(prefix string) AddressCodec {
	return AddressCodec{prefix: prefix}
}

// Encode returns the address of a 0x-prefixed or bare hex puzzle hash.
func (c AddressCodec) Encode(puzzleHash string) (string, error) {
	raw, err := hex.DecodeString(TrimHex(puzzleHash))
	if err != nil {
		return "", fmt.Errorf("%w: puzzle hash %q: %v", model.ErrInvalidHash, puzzleHash, err)
	}
	if len(raw) != puzzleHashLength {
		return "", fmt.Errorf("%w: puzzle hash has %d bytes", model.ErrInvalidHash, len(raw))
	}

	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert puzzle hash bits: %w", err)
	}
	address, err := bech32.EncodeM(c.prefix, data)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return address, nil
}

// Decode returns the 0x-prefixed puzzle hash of the address.
// An address that does not decode to a 32 byte hash is ErrInvalidAddress.
func (c AddressCodec) Decode(address string) (string, error) {
	hrp, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidAddress, err)
	}
	if version != bech32.VersionM {
		return "", fmt.Errorf("%w: not a bech32m address", model.ErrInvalidAddress)
	}
	if hrp != c.prefix {
		return "", fmt.Errorf("%w: prefix %q, want %q", model.ErrInvalidAddress, hrp, c.prefix)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidAddress, err)
	}
	if len(raw) != puzzleHashLength {
		return "", fmt.Errorf("%w: puzzle hash has %d bytes", model.ErrInvalidAddress, len(raw))
	}
	return hexPrefix + hex.EncodeToString(raw), nil
}
