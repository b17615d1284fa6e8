package model

// Network names the chain deployment an explorer instance serves.
type Network string

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// AddressPrefix is the human readable part of mainnet addresses.
const AddressPrefix = "cgn"
