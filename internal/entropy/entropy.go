// Package entropy implements the draw procedure: mixing a window of
// recent slot hashes, the raffle address, the ticket count, and the
// current timestamp into a single uniformly-distributed winning ticket
// index, with any 256-bit construction that has second-preimage
// resistance serving as the mixing hash — hash arbitrary inputs into one
// fixed-width digest and take a prefix, the same idiom SHA-512/half
// follows with SHA-256 in its place.
//
// A golang-lru cache keeps the mixing digest of each input tuple so a
// repeated draw over the same inputs is not re-hashed, and
// golang.org/x/sync/singleflight collapses
// concurrent draws against the same snapshot into one computation.
package entropy

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/viralvaultgg/solana-program/internal/address"
)

// MinSlotHashes is the minimum slot-hash window size (K >= 8).
const MinSlotHashes = 8

var (
	ErrInsufficientSlotHashes = errors.New("entropy: fewer than the minimum required slot hashes supplied")
	ErrZeroTickets            = errors.New("entropy: current_tickets must be > 0 to draw")
)

// SlotHash is one 32-byte entry from the host's recent-slot-hashes sysvar.
type SlotHash [32]byte

// Source draws winning tickets from a window of recent slot hashes. It
// caches the mixing digest for a given (raffle, slot-hash window,
// current_tickets, timestamp) tuple and de-duplicates concurrent draws
// against an identical snapshot, matching the single-writer-per-account
// model in spec §5 without inventing new coordination primitives.
type Source struct {
	cache *lru.Cache[string, [32]byte]
	group singleflight.Group
}

// NewSource builds an entropy source with a bounded LRU digest cache of
// the given size.
func NewSource(cacheSize int) *Source {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	c, err := lru.New[string, [32]byte](cacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, already guarded above.
		panic(err)
	}
	return &Source{cache: c}
}

// Draw selects winning_ticket in [0, currentTickets) per spec §4.5.
// slotHashes must carry at least MinSlotHashes entries, most-recent
// first; only the first MinSlotHashes are mixed in, matching "load the
// most recent K (K >= 8) slot hashes."
func (s *Source) Draw(raffle address.Address, slotHashes []SlotHash, currentTickets uint64, unixTimestamp int64) (uint64, error) {
	if currentTickets == 0 {
		return 0, ErrZeroTickets
	}
	if len(slotHashes) < MinSlotHashes {
		return 0, ErrInsufficientSlotHashes
	}

	key := digestKey(raffle, slotHashes[:MinSlotHashes], currentTickets, unixTimestamp)

	digest, err, _ := s.group.Do(key, func() (any, error) {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
		d := mix(raffle, slotHashes[:MinSlotHashes], currentTickets, unixTimestamp)
		s.cache.Add(key, d)
		return d, nil
	})
	if err != nil {
		return 0, err
	}

	d := digest.([32]byte)
	r := binary.LittleEndian.Uint64(d[:8])
	return r % currentTickets, nil
}

func mix(raffle address.Address, slotHashes []SlotHash, currentTickets uint64, unixTimestamp int64) [32]byte {
	h := sha256.New()
	for _, sh := range slotHashes {
		h.Write(sh[:])
	}
	h.Write(raffle.Bytes())
	var ct [8]byte
	binary.LittleEndian.PutUint64(ct[:], currentTickets)
	h.Write(ct[:])
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(unixTimestamp))
	h.Write(ts[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func digestKey(raffle address.Address, slotHashes []SlotHash, currentTickets uint64, unixTimestamp int64) string {
	buf := make([]byte, 0, 32+32*len(slotHashes)+16)
	buf = append(buf, raffle.Bytes()...)
	for _, sh := range slotHashes {
		buf = append(buf, sh[:]...)
	}
	var tail [16]byte
	binary.LittleEndian.PutUint64(tail[:8], currentTickets)
	binary.LittleEndian.PutUint64(tail[8:], uint64(unixTimestamp))
	buf = append(buf, tail[:]...)
	return string(buf)
}
