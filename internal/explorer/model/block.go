package model

import (
	"encoding/json"
	"time"
)

// BlockRecord is the compact header-level view of a block.
type BlockRecord struct {
	HeaderHash                 string          `json:"header_hash"`
	PrevHash                   string          `json:"prev_hash"`
	Height                     uint64          `json:"height"`
	Weight                     json.Number     `json:"weight"`
	TotalIters                 json.Number     `json:"total_iters"`
	SignagePointIndex          uint8           `json:"signage_point_index"`
	SubSlotIters               uint64          `json:"sub_slot_iters"`
	RequiredIters              uint64          `json:"required_iters"`
	Deficit                    uint8           `json:"deficit"`
	Overflow                   bool            `json:"overflow"`
	PoolPuzzleHash             string          `json:"pool_puzzle_hash"`
	FarmerPuzzleHash           string          `json:"farmer_puzzle_hash"`
	PrevTransactionBlockHeight uint64          `json:"prev_transaction_block_height"`
	PrevTransactionBlockHash   *string         `json:"prev_transaction_block_hash"`
	Timestamp                  *int64          `json:"timestamp"`
	Fees                       *uint64         `json:"fees"`
	RewardClaimsIncorporated   []Coin          `json:"reward_claims_incorporated"`
	SubEpochSummaryIncluded    json.RawMessage `json:"sub_epoch_summary_included,omitempty"`
}

// IsTransactionBlock reports whether the record carries a transaction block timestamp.
func (r BlockRecord) IsTransactionBlock() bool {
	return r.Timestamp != nil
}

// Time returns the block timestamp in UTC, or the zero time for non-transaction blocks.
func (r BlockRecord) Time() time.Time {
	if r.Timestamp == nil {
		return time.Time{}
	}
	return time.Unix(*r.Timestamp, 0).UTC()
}

// RewardChainBlock holds the consensus fields of a full block.
type RewardChainBlock struct {
	Weight                     json.Number     `json:"weight"`
	Height                     uint64          `json:"height"`
	TotalIters                 json.Number     `json:"total_iters"`
	SignagePointIndex          uint8           `json:"signage_point_index"`
	PosSsCcChallengeHash       string          `json:"pos_ss_cc_challenge_hash"`
	ProofOfSpace               json.RawMessage `json:"proof_of_space,omitempty"`
	ChallengeChainSpVdf        json.RawMessage `json:"challenge_chain_sp_vdf,omitempty"`
	ChallengeChainSpSignature  string          `json:"challenge_chain_sp_signature"`
	ChallengeChainIpVdf        json.RawMessage `json:"challenge_chain_ip_vdf,omitempty"`
	RewardChainSpVdf           json.RawMessage `json:"reward_chain_sp_vdf,omitempty"`
	RewardChainSpSignature     string          `json:"reward_chain_sp_signature"`
	RewardChainIpVdf           json.RawMessage `json:"reward_chain_ip_vdf,omitempty"`
	InfusedChallengeChainIpVdf json.RawMessage `json:"infused_challenge_chain_ip_vdf,omitempty"`
	IsTransactionBlock         bool            `json:"is_transaction_block"`
}

// TransactionsInfo holds transaction block data together with explorer derived fields.
type TransactionsInfo struct {
	GeneratorRoot            string `json:"generator_root"`
	GeneratorRefsRoot        string `json:"generator_refs_root"`
	AggregatedSignature      string `json:"aggregated_signature"`
	Fees                     uint64 `json:"fees"`
	Cost                     uint64 `json:"cost"`
	RewardClaimsIncorporated []Coin `json:"reward_claims_incorporated"`

	Amount       *int64        `json:"amount,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// FullBlock is a complete block as returned by the full node.
type FullBlock struct {
	HeaderHash                   string            `json:"header_hash"`
	FinishedSubSlots             json.RawMessage   `json:"finished_sub_slots,omitempty"`
	RewardChainBlock             RewardChainBlock  `json:"reward_chain_block"`
	ChallengeChainSpProof        json.RawMessage   `json:"challenge_chain_sp_proof,omitempty"`
	ChallengeChainIpProof        json.RawMessage   `json:"challenge_chain_ip_proof,omitempty"`
	RewardChainSpProof           json.RawMessage   `json:"reward_chain_sp_proof,omitempty"`
	RewardChainIpProof           json.RawMessage   `json:"reward_chain_ip_proof,omitempty"`
	InfusedChallengeChainIpProof json.RawMessage   `json:"infused_challenge_chain_ip_proof,omitempty"`
	Foliage                      json.RawMessage   `json:"foliage,omitempty"`
	FoliageTransactionBlock      json.RawMessage   `json:"foliage_transaction_block,omitempty"`
	TransactionsInfo             *TransactionsInfo `json:"transactions_info"`
	TransactionsGenerator        json.RawMessage   `json:"transactions_generator,omitempty"`
	TransactionsGeneratorRefList []uint32          `json:"transactions_generator_ref_list"`
}

// SyncState reports node synchronisation progress.
type SyncState struct {
	SyncMode           bool   `json:"sync_mode"`
	Synced             bool   `json:"synced"`
	SyncTipHeight      uint64 `json:"sync_tip_height"`
	SyncProgressHeight uint64 `json:"sync_progress_height"`
}

// BlockchainState is the node view of the chain tip, extended with directory aggregates.
type BlockchainState struct {
	Peak                        *BlockRecord `json:"peak"`
	GenesisChallengeInitialized bool         `json:"genesis_challenge_initialized"`
	Sync                        SyncState    `json:"sync"`
	Difficulty                  uint64       `json:"difficulty"`
	SubSlotIters                uint64       `json:"sub_slot_iters"`
	Space                       json.Number  `json:"space"`
	MempoolSize                 uint64       `json:"mempool_size"`

	CirculatingSupply  uint64 `json:"circulating_supply"`
	UniqueAddressCount uint64 `json:"unique_address_count"`
}

// NetworkSpace is the estimated storage committed between two blocks.
type NetworkSpace struct {
	Space json.Number `json:"space"`
}
