// Package jsonrpc exposes the raffle engine over a minimal JSON-RPC 2.0
// surface: one method to submit an instruction and dispatch it, plus a
// handful of get_* read methods over the account records.
package jsonrpc

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/engine"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// AuditEntry records one dispatched instruction's outcome, the
// supplemented "structured audit log" feature: an in-memory ring buffer
// of instruction name, touched accounts, and Result, standing in for the
// teacher's ledger-close metadata since this program has no consensus
// layer to generate it from.
type AuditEntry struct {
	InstructionID engine.ID
	Accounts      engine.Accounts
	Result        raffle.Result
}

// auditRingSize bounds the in-memory audit log so a long-running server
// process doesn't grow it without bound.
const auditRingSize = 1024

// Handler serves JSON-RPC methods against a single program's ledger.
type Handler struct {
	mu sync.Mutex

	store     *ledger.Store
	programID address.Address
	rent      raffle.RentModel
	entropy   *entropy.Source
	now       func() int64

	audit    []AuditEntry
	auditPos int
}

// NewHandler builds a Handler serving program's accounts out of store.
// now supplies the host clock (spec §1 collaborator (c)).
func NewHandler(store *ledger.Store, program address.Address, rent raffle.RentModel, ent *entropy.Source, now func() int64) *Handler {
	return &Handler{
		store:     store,
		programID: program,
		rent:      rent,
		entropy:   ent,
		now:       now,
		audit:     make([]AuditEntry, 0, auditRingSize),
	}
}

// Handle dispatches one JSON-RPC method call.
func (h *Handler) Handle(method string, params interface{}) (interface{}, error) {
	switch method {
	case "submit_instruction":
		return h.submitInstruction(params)
	case "get_config":
		return h.getConfig()
	case "get_raffle":
		return h.getRaffle(params)
	case "get_treasury":
		return h.getTreasury(params)
	case "get_ticket_balance":
		return h.getTicketBalance(params)
	default:
		return nil, fmt.Errorf("jsonrpc: unknown method %q", method)
	}
}

// AuditLog returns a snapshot of the recorded instruction history, most
// recent last.
func (h *Handler) AuditLog() []AuditEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	// Once the ring has wrapped, auditPos is the oldest slot.
	out := make([]AuditEntry, 0, len(h.audit))
	out = append(out, h.audit[h.auditPos:]...)
	out = append(out, h.audit[:h.auditPos]...)
	return out
}

func (h *Handler) recordAudit(entry AuditEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.audit) < auditRingSize {
		h.audit = append(h.audit, entry)
		return
	}
	h.audit[h.auditPos] = entry
	h.auditPos = (h.auditPos + 1) % auditRingSize
}

func decodeParams(params interface{}, out interface{}) error {
	// params arrives as whatever encoding/json produced for an
	// interface{} field (map[string]interface{}), so round-trip it
	// through the same codec to populate a typed struct.
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("jsonrpc: re-marshaling params: %w", err)
	}
	return json.Unmarshal(raw, out)
}

func (h *Handler) submitInstruction(params interface{}) (interface{}, error) {
	var p SubmitInstructionParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(p.RawHex)
	if err != nil {
		return nil, fmt.Errorf("jsonrpc: invalid raw_hex: %w", err)
	}

	accts := make(engine.Accounts, len(p.Accounts))
	for role, b58 := range p.Accounts {
		addr, err := address.ParseAddress(b58)
		if err != nil {
			return nil, fmt.Errorf("jsonrpc: invalid account %q: %w", role, err)
		}
		accts[role] = addr
	}

	signers := make(map[address.Address]bool, len(p.Signers))
	for _, b58 := range p.Signers {
		addr, err := address.ParseAddress(b58)
		if err != nil {
			return nil, fmt.Errorf("jsonrpc: invalid signer: %w", err)
		}
		signers[addr] = true
	}

	ctx := &raffle.ApplyContext{
		View:      h.store,
		ProgramID: h.programID,
		Now:       h.now(),
		Signers:   signers,
		Rent:      h.rent,
		Entropy:   h.entropy,
	}

	res, err := engine.Dispatch(ctx, accts, raw)
	if err != nil {
		return nil, err
	}

	var id engine.ID
	if len(raw) >= 8 {
		id = engine.ID(binary.LittleEndian.Uint64(raw[:8]))
	}
	h.recordAudit(AuditEntry{InstructionID: id, Accounts: accts, Result: res})

	return SubmitInstructionResult{Result: res.String(), Success: res.IsSuccess()}, nil
}

func (h *Handler) getConfig() (interface{}, error) {
	k, _, err := keylet.Config(h.programID)
	if err != nil {
		return nil, err
	}
	data, ok := h.store.Read(k)
	if !ok {
		return nil, fmt.Errorf("jsonrpc: config not initialized")
	}
	return raffle.DecodeConfig(data)
}

func (h *Handler) getRaffle(params interface{}) (interface{}, error) {
	var p RaffleIDParam
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	k, _, err := keylet.Raffle(h.programID, p.RaffleID)
	if err != nil {
		return nil, err
	}
	data, ok := h.store.Read(k)
	if !ok {
		return nil, fmt.Errorf("jsonrpc: raffle %d not found", p.RaffleID)
	}
	return raffle.DecodeRaffle(data)
}

func (h *Handler) getTreasury(params interface{}) (interface{}, error) {
	var p AddressParam
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	raffleAddr, err := address.ParseAddress(p.Address)
	if err != nil {
		return nil, err
	}
	k, _, err := keylet.Treasury(h.programID, raffleAddr)
	if err != nil {
		return nil, err
	}
	data, ok := h.store.Read(k)
	if !ok {
		return nil, fmt.Errorf("jsonrpc: treasury for raffle %s not found", p.Address)
	}
	return raffle.DecodeTreasury(data)
}

func (h *Handler) getTicketBalance(params interface{}) (interface{}, error) {
	var p struct {
		Raffle string `json:"raffle"`
		Owner  string `json:"owner"`
	}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	raffleAddr, err := address.ParseAddress(p.Raffle)
	if err != nil {
		return nil, err
	}
	owner, err := address.ParseAddress(p.Owner)
	if err != nil {
		return nil, err
	}
	k, _, err := keylet.TicketBalance(h.programID, raffleAddr, owner)
	if err != nil {
		return nil, err
	}
	data, ok := h.store.Read(k)
	if !ok {
		return nil, fmt.Errorf("jsonrpc: ticket balance not found")
	}
	return raffle.DecodeTicketBalance(data)
}
