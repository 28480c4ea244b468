package ledger

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
)

// Action records what happened to a tracked account or balance during
// the life of one ApplyStateTable: cached unread, inserted, modified, or
// erased.
type Action int

const (
	ActionCache Action = iota
	ActionInsert
	ActionModify
	ActionErase
)

type trackedAccount struct {
	action  Action
	current []byte
}

// ApplyStateTable buffers every account and lamport mutation an
// instruction makes against a base LedgerView, and only flushes them to
// that base on Commit. Discard leaves the base untouched. This is the
// mechanism behind spec §4.2/§5's "every instruction is one atomic
// critical section that either commits all account mutations or none."
type ApplyStateTable struct {
	base     LedgerView
	accounts map[address.Address]*trackedAccount
	balances map[address.Address]uint64
	touched  []address.Address // insertion order, for deterministic Commit
}

func NewApplyStateTable(base LedgerView) *ApplyStateTable {
	return &ApplyStateTable{
		base:     base,
		accounts: make(map[address.Address]*trackedAccount),
		balances: make(map[address.Address]uint64),
	}
}

func (t *ApplyStateTable) touch(addr address.Address) {
	if _, ok := t.accounts[addr]; !ok {
		t.touched = append(t.touched, addr)
	}
}

func (t *ApplyStateTable) Read(k keylet.Keylet) ([]byte, bool) {
	if entry, ok := t.accounts[k.Address]; ok {
		if entry.action == ActionErase {
			return nil, false
		}
		return entry.current, true
	}
	data, ok := t.base.Read(k)
	if ok {
		t.touch(k.Address)
		t.accounts[k.Address] = &trackedAccount{action: ActionCache, current: data}
	}
	return data, ok
}

func (t *ApplyStateTable) Exists(k keylet.Keylet) bool {
	if entry, ok := t.accounts[k.Address]; ok {
		return entry.action != ActionErase
	}
	return t.base.Exists(k)
}

func (t *ApplyStateTable) Insert(k keylet.Keylet, data []byte) error {
	if entry, ok := t.accounts[k.Address]; ok {
		if entry.action != ActionErase {
			return ErrAccountExists
		}
		entry.action = ActionModify
		entry.current = data
		return nil
	}
	if t.base.Exists(k) {
		return ErrAccountExists
	}
	t.touch(k.Address)
	t.accounts[k.Address] = &trackedAccount{action: ActionInsert, current: data}
	return nil
}

func (t *ApplyStateTable) Update(k keylet.Keylet, data []byte) error {
	if entry, ok := t.accounts[k.Address]; ok {
		if entry.action == ActionErase {
			return ErrAccountNotFound
		}
		if entry.action == ActionCache {
			entry.action = ActionModify
		}
		entry.current = data
		return nil
	}
	if !t.base.Exists(k) {
		return ErrAccountNotFound
	}
	t.touch(k.Address)
	t.accounts[k.Address] = &trackedAccount{action: ActionModify, current: data}
	return nil
}

func (t *ApplyStateTable) Erase(k keylet.Keylet) error {
	if entry, ok := t.accounts[k.Address]; ok {
		if entry.action == ActionErase {
			return ErrAccountNotFound
		}
		if entry.action == ActionInsert {
			delete(t.accounts, k.Address)
			return nil
		}
		entry.action = ActionErase
		return nil
	}
	if !t.base.Exists(k) {
		return ErrAccountNotFound
	}
	t.touch(k.Address)
	t.accounts[k.Address] = &trackedAccount{action: ActionErase}
	return nil
}

func (t *ApplyStateTable) Balance(addr address.Address) uint64 {
	if bal, ok := t.balances[addr]; ok {
		return bal
	}
	return t.base.Balance(addr)
}

func (t *ApplyStateTable) Credit(addr address.Address, amount uint64) error {
	t.balances[addr] = t.Balance(addr) + amount
	return nil
}

func (t *ApplyStateTable) Debit(addr address.Address, amount uint64) error {
	bal := t.Balance(addr)
	if bal < amount {
		return ErrInsufficientLamports
	}
	t.balances[addr] = bal - amount
	return nil
}

// Commit flushes every buffered account and balance mutation to the base
// view. Call only after every guard in the instruction has passed.
func (t *ApplyStateTable) Commit() error {
	for _, addr := range t.touched {
		entry := t.accounts[addr]
		k := keylet.Keylet{Address: addr}
		switch entry.action {
		case ActionCache:
			continue
		case ActionInsert:
			if err := t.base.Insert(k, entry.current); err != nil {
				return err
			}
		case ActionModify:
			if err := t.base.Update(k, entry.current); err != nil {
				return err
			}
		case ActionErase:
			if err := t.base.Erase(k); err != nil {
				return err
			}
		}
	}
	for addr, bal := range t.balances {
		current := t.base.Balance(addr)
		if bal >= current {
			if err := t.base.Credit(addr, bal-current); err != nil {
				return err
			}
		} else {
			if err := t.base.Debit(addr, current-bal); err != nil {
				return err
			}
		}
	}
	return nil
}

// Discard drops every buffered mutation without touching the base view.
func (t *ApplyStateTable) Discard() {
	t.accounts = make(map[address.Address]*trackedAccount)
	t.balances = make(map[address.Address]uint64)
	t.touched = nil
}
