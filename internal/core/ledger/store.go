// Package ledger holds the in-memory account store and the tracked-
// mutation wrapper every instruction applies its changes through: a view
// that buffers reads and writes against a base store and only commits
// them once the caller decides the transaction succeeded, giving the
// all-or-nothing atomicity an instruction needs — every instruction is
// one atomic critical section that either commits all account mutations
// or none. The Action-tagged trackedAccount bookkeeping exists because it
// is exactly the mechanism that atomicity needs.
package ledger

import (
	"errors"
	"sync"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
)

var (
	ErrAccountExists      = errors.New("ledger: account already exists")
	ErrAccountNotFound    = errors.New("ledger: account not found")
	ErrInsufficientLamports = errors.New("ledger: insufficient lamport balance")
)

// LedgerView is the read/write surface instructions and ApplyContext use
// to touch accounts. It is satisfied by both *Store directly and by
// *ApplyStateTable wrapping one.
type LedgerView interface {
	Read(k keylet.Keylet) ([]byte, bool)
	Exists(k keylet.Keylet) bool
	Insert(k keylet.Keylet, data []byte) error
	Update(k keylet.Keylet, data []byte) error
	Erase(k keylet.Keylet) error

	Balance(addr address.Address) uint64
	Credit(addr address.Address, amount uint64) error
	Debit(addr address.Address, amount uint64) error
}

// Store is the base, uncommitted account ledger: a plain in-memory map of
// program-owned account bytes plus every address's lamport balance
// (including external, non-program-owned wallets), mirroring the host
// runtime's account model that spec §1 treats as an external collaborator.
type Store struct {
	mu       sync.RWMutex
	data     map[address.Address][]byte
	lamports map[address.Address]uint64
}

func NewStore() *Store {
	return &Store{
		data:     make(map[address.Address][]byte),
		lamports: make(map[address.Address]uint64),
	}
}

func (s *Store) Read(k keylet.Keylet) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[k.Address]
	return v, ok
}

func (s *Store) Exists(k keylet.Keylet) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[k.Address]
	return ok
}

func (s *Store) Insert(k keylet.Keylet, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[k.Address]; exists {
		return ErrAccountExists
	}
	s.data[k.Address] = data
	return nil
}

func (s *Store) Update(k keylet.Keylet, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[k.Address]; !exists {
		return ErrAccountNotFound
	}
	s.data[k.Address] = data
	return nil
}

func (s *Store) Erase(k keylet.Keylet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[k.Address]; !exists {
		return ErrAccountNotFound
	}
	delete(s.data, k.Address)
	return nil
}

func (s *Store) Balance(addr address.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lamports[addr]
}

// SetBalance seeds an address's lamport balance; used by test harnesses
// and by account-creation instructions funding a new rent-exempt account.
func (s *Store) SetBalance(addr address.Address, lamports uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lamports[addr] = lamports
}

func (s *Store) Credit(addr address.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lamports[addr] += amount
	return nil
}

func (s *Store) Debit(addr address.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lamports[addr] < amount {
		return ErrInsufficientLamports
	}
	s.lamports[addr] -= amount
	return nil
}
