package testing

// LamportsPerSol is the number of lamports in one SOL, mirrored here
// purely for readable fixture amounts (ticket prices, rent floors).
const LamportsPerSol uint64 = 1_000_000_000

// Sol converts a whole-SOL amount to lamports, e.g. Sol(1) == 1_000_000_000.
func Sol(n uint64) uint64 {
	return n * LamportsPerSol
}
