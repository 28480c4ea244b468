package jsonrpc

// RPCRequest represents one JSON-RPC request body.
type RPCRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params,omitempty"`
}

// RPCResponse represents one JSON-RPC response body.
type RPCResponse struct {
	Result interface{} `json:"result"`
	ID     interface{} `json:"id"`
}

// RPCError represents a JSON-RPC error object.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SubmitInstructionParams is the "submit_instruction" method's single
// params object: a raw instruction payload (hex-encoded, discriminator
// plus arguments) and the role-named accounts and signers it runs
// against, spec §6's "instruction + named accounts" surface expressed
// over the wire.
type SubmitInstructionParams struct {
	RawHex   string            `json:"raw_hex"`
	Accounts map[string]string `json:"accounts"`
	Signers  []string          `json:"signers"`
}

// SubmitInstructionResult reports what Dispatch returned.
type SubmitInstructionResult struct {
	Result  string `json:"result"`
	Success bool   `json:"success"`
}

// AddressParam is the single-address params object get_treasury takes
// (the raffle's address).
type AddressParam struct {
	Address string `json:"address"`
}

// RaffleIDParam selects a raffle by its raffle_id rather than its
// derived address, for get_raffle callers that only know the counter.
type RaffleIDParam struct {
	RaffleID uint64 `json:"raffle_id"`
}
