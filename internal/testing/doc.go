// Package testing provides test infrastructure for the raffle program,
// in the shape of rippled's test::jtx framework that inspired the
// teacher's own internal/testing package, scoped down to this program's
// single domain.
//
// # Basic Usage
//
//	func TestBuyTickets(t *testing.T) {
//	    program := testing.NewAccount("program").Address
//	    env := testing.NewTestEnv(t, program)
//
//	    admin := testing.NewAccount("admin")
//	    buyer := testing.NewAccount("buyer")
//	    env.Fund(10*testing.LamportsPerSol, admin, buyer)
//
//	    res, err := env.Dispatch(engine.Accounts{engine.RoleSigner: admin.Address}, initConfigPayload)
//	    require.NoError(t, err)
//	    testing.RequireSuccess(t, res)
//	}
//
// # TestEnv
//
// TestEnv wraps an in-memory ledger.Store, a ManualClock, and the
// program's address so tests can call Dispatch without assembling an
// ApplyContext by hand:
//
//	env.Fund(amount, accounts...)    // set lamport balances, mark as signers
//	env.Dispatch(accts, raw)         // decode + apply one instruction
//	env.Balance(addr)                // lamport balance
//	env.AdvanceTime(d)               // move the manual clock forward
//
// # Account
//
// Account derives a reproducible ed25519 keypair from a name, so the
// same fixture name always yields the same address across test runs.
//
//	alice := testing.NewAccount("alice")
//
// # Assertions
//
// Helper functions for common test assertions:
//
//	testing.RequireSuccess(t, res)
//	testing.RequireResult(t, raffle.InsufficientFunds, res)
//	testing.RequireBalance(t, env, addr, testing.Sol(5))
//	testing.RequireAccountExists(t, env, keylet)
package testing
