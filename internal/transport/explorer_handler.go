// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const defaultListLimit = 10

type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// ExplorerHandler serves explorer queries as JSON over HTTP.
type ExplorerHandler struct {
	explorer  Explorer
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(explorer Explorer, logger *zap.Logger) (*ExplorerHandler, error) {
	if explorer == nil {
		return nil, errors.New("explorer is required")
	}
	return &ExplorerHandler{
		explorer:  explorer,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("http"),
	}, nil
}

// Register adds the explorer routes to the gateway mux.
func (h *ExplorerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		path    string
		handler gwruntime.HandlerFunc
	}{
		{"/v1/blockchain/state", h.blockchainState},
		{"/v1/blocks", h.blocks},
		{"/v1/blocks/{hash}", h.blockByHash},
		{"/v1/blocks/height/{height}", h.blockByHeight},
		{"/v1/block-records/{hash}", h.blockRecord},
		{"/v1/block-records/height/{height}", h.blockRecordByHeight},
		{"/v1/unfinished-block-headers/{height}", h.unfinishedBlockHeaders},
		{"/v1/additions-removals/{hash}", h.additionsAndRemovals},
		{"/v1/coins/{name}", h.coinRecord},
		{"/v1/puzzle-hashes/{puzzle_hash}/unspent-coins", h.unspentCoins},
		{"/v1/puzzle-hashes/{puzzle_hash}/address", h.puzzleHashToAddress},
		{"/v1/network-space", h.networkSpace},
		{"/v1/addresses/{address}", h.address},
		{"/v1/addresses/{address}/puzzle-hash", h.addressToPuzzleHash},
		{"/v1/transactions", h.transactions},
		{"/v1/transactions/{id}", h.transaction},
		{"/v1/transactions/height/{height}", h.transactionsByHeight},
		{"/v1/stats/transactions-per-day", h.transactionsPerDay},
		{"/v1/search", h.search},
	}
	for _, r := range routes {
		if err := mux.HandlePath(http.MethodGet, r.path, r.handler); err != nil {
			return fmt.Errorf("register %s: %w", r.path, err)
		}
	}
	return nil
}

func (h *ExplorerHandler) blockchainState(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	state, err := h.explorer.GetBlockchainState(r.Context())
	h.respond(w, r, state, err)
}

func (h *ExplorerHandler) blocks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	start, err := queryUint(r, "start", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	end, err := queryUint(r, "end", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	blocks, err := h.explorer.GetBlocks(r.Context(), start, end)
	h.respond(w, r, blocks, err)
}

func (h *ExplorerHandler) blockByHash(w http.ResponseWriter, r *http.Request, params map[string]string) {
	block, err := h.explorer.GetBlockByHash(r.Context(), params["hash"])
	h.respond(w, r, block, err)
}

func (h *ExplorerHandler) blockByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathUint(params, "height")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	block, err := h.explorer.GetBlockByHeight(r.Context(), height)
	h.respond(w, r, block, err)
}

func (h *ExplorerHandler) blockRecord(w http.ResponseWriter, r *http.Request, params map[string]string) {
	record, err := h.explorer.GetBlockRecord(r.Context(), params["hash"])
	h.respond(w, r, record, err)
}

func (h *ExplorerHandler) blockRecordByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathUint(params, "height")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	record, err := h.explorer.GetBlockRecordByHeight(r.Context(), height)
	h.respond(w, r, record, err)
}

func (h *ExplorerHandler) unfinishedBlockHeaders(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathUint(params, "height")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	headers, err := h.explorer.GetUnfinishedBlockHeaders(r.Context(), height)
	h.respond(w, r, headers, err)
}

func (h *ExplorerHandler) additionsAndRemovals(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.explorer.GetAdditionsAndRemovals(r.Context(), params["hash"])
	h.respond(w, r, res, err)
}

func (h *ExplorerHandler) coinRecord(w http.ResponseWriter, r *http.Request, params map[string]string) {
	record, err := h.explorer.GetCoinRecord(r.Context(), params["name"])
	h.respond(w, r, record, err)
}

func (h *ExplorerHandler) unspentCoins(w http.ResponseWriter, r *http.Request, params map[string]string) {
	coins, err := h.explorer.GetUnspentCoins(r.Context(), params["puzzle_hash"])
	h.respond(w, r, coins, err)
}

func (h *ExplorerHandler) puzzleHashToAddress(w http.ResponseWriter, r *http.Request, params map[string]string) {
	address, err := h.explorer.PuzzleHashToAddress(params["puzzle_hash"])
	h.respond(w, r, map[string]string{"address": address}, err)
}

func (h *ExplorerHandler) networkSpace(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	older, newer := q.Get("older"), q.Get("newer")
	if older == "" || newer == "" {
		h.fail(w, r, fmt.Errorf("%w: older and newer header hashes are required", model.ErrInvalidArgument))
		return
	}
	space, err := h.explorer.GetNetworkSpace(r.Context(), older, newer)
	h.respond(w, r, space, err)
}

func (h *ExplorerHandler) address(w http.ResponseWriter, r *http.Request, params map[string]string) {
	address, err := h.explorer.GetAddress(r.Context(), params["address"])
	h.respond(w, r, address, err)
}

func (h *ExplorerHandler) addressToPuzzleHash(w http.ResponseWriter, r *http.Request, params map[string]string) {
	hash, err := h.explorer.AddressToPuzzleHash(params["address"])
	h.respond(w, r, map[string]string{"puzzle_hash": hash}, err)
}

func (h *ExplorerHandler) transactions(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	limit, err := queryUint(r, "limit", defaultListLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	txs, err := h.explorer.ListTransactions(r.Context(), limit, offset)
	h.respond(w, r, txs, err)
}

func (h *ExplorerHandler) transaction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	tx, err := h.explorer.GetTransaction(r.Context(), params["id"])
	h.respond(w, r, tx, err)
}

func (h *ExplorerHandler) transactionsByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := pathUint(params, "height")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	txs, err := h.explorer.GetTransactionsByHeight(r.Context(), height)
	h.respond(w, r, txs, err)
}

func (h *ExplorerHandler) transactionsPerDay(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	days, err := h.explorer.GetTransactionsPerDay(r.Context())
	h.respond(w, r, days, err)
}

func (h *ExplorerHandler) search(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	res, err := h.explorer.Find(r.Context(), r.URL.Query().Get("q"))
	h.respond(w, r, res, err)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, r *http.Request, body any, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, body)
}

func (h *ExplorerHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("code", code), zap.Error(err))
	}
	h.write(w, code, errorBody{Code: code, Error: err.Error()})
}

func (h *ExplorerHandler) write(w http.ResponseWriter, code int, body any) {
	data, err := h.marshaler.Marshal(body)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(body))
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

// StatusCode maps explorer errors to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidAddress),
		errors.Is(err, model.ErrInvalidHash),
		errors.Is(err, model.ErrInvalidArgument),
		errors.Is(err, model.ErrInvalidSearchToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pathUint(params map[string]string, name string) (uint64, error) {
	v, err := strconv.ParseUint(params[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a non-negative integer", model.ErrInvalidArgument, name, params[name])
	}
	return v, nil
}

func queryUint(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a non-negative integer", model.ErrInvalidArgument, name, raw)
	}
	return v, nil
}
