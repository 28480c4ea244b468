package raffle

// Instruction is one dispatchable operation. Apply executes the
// instruction's full guard-then-mutate body against ctx.View and returns
// Success only if every mutation committed; any other Result means the
// caller must discard ctx.View's buffered changes.
type Instruction interface {
	Apply(ctx *ApplyContext) Result
}
