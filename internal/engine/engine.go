package engine

import (
	"encoding/binary"

	"github.com/viralvaultgg/solana-program/internal/codec"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// ErrShortInstruction is returned when raw is too short to carry an
// 8-byte instruction-kind discriminator.
var ErrShortInstruction = errShortInstruction{}

type errShortInstruction struct{}

func (errShortInstruction) Error() string { return "engine: instruction payload too short" }

// UnknownInstructionError is returned when raw's leading discriminator
// does not match any instruction this program understands.
type UnknownInstructionError struct {
	ID ID
}

func (e *UnknownInstructionError) Error() string {
	return "engine: unknown instruction id " + e.ID.String()
}

// Dispatch decodes raw into one of the eleven instructions and applies it
// against ctx.View, buffered through a fresh ApplyStateTable so a failed
// instruction leaves no partial writes: an instruction either fully
// applies or has no effect.
func Dispatch(ctx *raffle.ApplyContext, accts Accounts, raw []byte) (raffle.Result, error) {
	if len(raw) < 8 {
		return 0, ErrShortInstruction
	}
	id := ID(binary.LittleEndian.Uint64(raw[:8]))
	decode, ok := decoders[id]
	if !ok {
		return 0, &UnknownInstructionError{ID: id}
	}

	d := codec.NewRawDecoder(raw[8:])
	ix, err := decode(accts, d)
	if err != nil {
		return 0, err
	}
	if err := d.Finish(); err != nil {
		return 0, err
	}

	table := ledger.NewApplyStateTable(ctx.View)
	scoped := *ctx
	scoped.View = table

	res := ix.Apply(&scoped)
	if res != raffle.Success {
		table.Discard()
		return res, nil
	}
	if err := table.Commit(); err != nil {
		return 0, err
	}
	return res, nil
}
