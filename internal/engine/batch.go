package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// BatchItem is one instruction submission within a DispatchBatch call.
type BatchItem struct {
	Accounts Accounts
	Raw      []byte
}

// BatchOutcome is the per-item result of a DispatchBatch call, in the
// same order as the submitted items.
type BatchOutcome struct {
	Result raffle.Result
	Err    error
}

// DispatchBatch replays a batch of instructions concurrently, sharding by
// the touched raffle's address so instructions against different raffles
// run in parallel while instructions against the same raffle still run
// one at a time in submission order, matching how a host would serialize
// transactions that touch overlapping accounts. newCtx builds a fresh
// ApplyContext for the item at the given index (each item may carry its
// own Signers/Now), matching what a real submission batch would supply.
func DispatchBatch(newCtx func(index int, item BatchItem) *raffle.ApplyContext, items []BatchItem) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(items))

	shards := make(map[address.Address][]int)
	var noRaffle []int
	for i, item := range items {
		if addr, ok := item.Accounts[RoleRaffle]; ok {
			shards[addr] = append(shards[addr], i)
			continue
		}
		noRaffle = append(noRaffle, i)
	}

	var g errgroup.Group

	runShard := func(indices []int) func() error {
		return func() error {
			for _, i := range indices {
				ctx := newCtx(i, items[i])
				res, err := Dispatch(ctx, items[i].Accounts, items[i].Raw)
				outcomes[i] = BatchOutcome{Result: res, Err: err}
			}
			return nil
		}
	}

	for _, indices := range shards {
		g.Go(runShard(indices))
	}
	if len(noRaffle) > 0 {
		g.Go(runShard(noRaffle))
	}

	// Every shard's worker swallows its own per-item errors into
	// outcomes rather than returning them, so Wait never actually
	// surfaces an error; it only blocks until every shard has drained.
	_ = g.Wait()

	return outcomes
}
