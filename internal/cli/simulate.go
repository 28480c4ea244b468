package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/engine"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
	"github.com/viralvaultgg/solana-program/internal/server/api/jsonrpc"
)

// simulateStep is one entry in a simulate script: the same shape the
// JSON-RPC submit_instruction method accepts, plus a clock override so a
// script can advance past a raffle's end_time without a real wall-clock
// wait.
type simulateStep struct {
	jsonrpc.SubmitInstructionParams
	UnixTimestamp int64 `json:"unix_timestamp"`
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [script.json]",
	Short: "Replay a scripted instruction sequence against a fresh in-memory ledger",
	Long: `simulate reads a JSON array of instruction submissions (the same
shape the JSON-RPC submit_instruction method takes, with an added
unix_timestamp per step) and replays them against a fresh ledger built
from configuration, printing each step's Result. Steps are dispatched
through engine.DispatchBatch, which shards by raffle address so steps
against different raffles run concurrently while steps against the same
raffle stay ordered.

Useful for reproducing an end-to-end scenario (happy path, expired
refund, threshold-not-met rejection, ...) without standing up a server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		var steps []simulateStep
		if err := json.Unmarshal(raw, &steps); err != nil {
			return fmt.Errorf("parsing script: %w", err)
		}

		programID, err := activeConfig.ProgramAddress()
		if err != nil {
			return fmt.Errorf("program_id: %w", err)
		}

		store := ledger.NewStore()
		ent := entropy.NewSource(activeConfig.Ledger.EntropyCacheSize)
		rent := raffle.FixedRentModel{
			BaseLamports:    activeConfig.Rent.BaseLamports,
			LamportsPerByte: activeConfig.Rent.LamportsPerByte,
		}

		items, contexts, err := decodeSteps(steps, programID, rent, ent)
		if err != nil {
			return err
		}
		for _, ctx := range contexts {
			ctx.View = store
		}

		outcomes := engine.DispatchBatch(func(index int, item engine.BatchItem) *raffle.ApplyContext {
			return contexts[index]
		}, items)

		for i, outcome := range outcomes {
			if outcome.Err != nil {
				fmt.Fprintf(os.Stdout, "step %d: error: %v\n", i, outcome.Err)
				continue
			}
			fmt.Fprintf(os.Stdout, "step %d: %s\n", i, outcome.Result.String())
		}
		return nil
	},
}

// decodeSteps turns the script's JSON steps into dispatch-ready items and
// one ApplyContext per step, index-aligned with items so the caller can
// look a step's context up by the index DispatchBatch hands back.
func decodeSteps(steps []simulateStep, programID address.Address, rent raffle.RentModel, ent *entropy.Source) ([]engine.BatchItem, []*raffle.ApplyContext, error) {
	items := make([]engine.BatchItem, 0, len(steps))
	contexts := make([]*raffle.ApplyContext, 0, len(steps))

	for i, step := range steps {
		rawBytes, err := hex.DecodeString(step.RawHex)
		if err != nil {
			return nil, nil, fmt.Errorf("step %d: invalid raw_hex: %w", i, err)
		}

		accts := make(engine.Accounts, len(step.Accounts))
		for role, b58 := range step.Accounts {
			addr, err := address.ParseAddress(b58)
			if err != nil {
				return nil, nil, fmt.Errorf("step %d: invalid account %q: %w", i, role, err)
			}
			accts[role] = addr
		}

		signers := make(map[address.Address]bool, len(step.Signers))
		for _, b58 := range step.Signers {
			addr, err := address.ParseAddress(b58)
			if err != nil {
				return nil, nil, fmt.Errorf("step %d: invalid signer: %w", i, err)
			}
			signers[addr] = true
		}

		items = append(items, engine.BatchItem{Accounts: accts, Raw: rawBytes})
		contexts = append(contexts, &raffle.ApplyContext{
			ProgramID: programID,
			Now:       step.UnixTimestamp,
			Signers:   signers,
			Rent:      rent,
			Entropy:   ent,
		})
	}

	return items, contexts, nil
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
