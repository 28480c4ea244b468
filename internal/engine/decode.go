package engine

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
	"github.com/viralvaultgg/solana-program/internal/raffle/instructions"
)

// decodeFunc builds the Instruction for one ID from its account list and
// argument payload (the bytes following the 8-byte ID).
type decodeFunc func(accts Accounts, d *codec.Decoder) (raffle.Instruction, error)

var decoders = map[ID]decodeFunc{
	IDInitConfig:            decodeInitConfig,
	IDCreateRaffle:          decodeCreateRaffle,
	IDInitTicketBalance:     decodeInitTicketBalance,
	IDBuyTickets:            decodeBuyTickets,
	IDDrawWinningTicket:     decodeDrawWinningTicket,
	IDSetWinner:             decodeSetWinner,
	IDSubmitWinnerData:      decodeSubmitWinnerData,
	IDWithdrawFromTreasury:  decodeWithdrawFromTreasury,
	IDExpireRaffle:          decodeExpireRaffle,
	IDReclaimExpiredTickets: decodeReclaimExpiredTickets,
	IDUpgradeConfig:         decodeUpgradeConfig,
}

func addr32(d *codec.Decoder) address.Address {
	var a address.Address
	copy(a[:], d.Fixed(address.Size))
	return a
}

func seed8(d *codec.Decoder) [8]byte {
	var s [8]byte
	copy(s[:], d.Fixed(8))
	return s
}

func decodeInitConfig(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	return &instructions.InitConfig{
		Signer:               signer,
		ManagementAuthority:  addr32(d),
		PayoutAuthority:      addr32(d),
	}, nil
}

func decodeCreateRaffle(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	metadataURI := d.String()
	ticketPrice := d.U64()
	endTime := d.I64()
	minTickets := d.U64()
	maxTickets := d.OptionU64()
	return &instructions.CreateRaffle{
		Signer:      signer,
		MetadataUri: metadataURI,
		TicketPrice: ticketPrice,
		EndTime:     endTime,
		MinTickets:  minTickets,
		MaxTickets:  maxTickets,
	}, nil
}

func decodeInitTicketBalance(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	return &instructions.InitTicketBalance{Signer: signer, Raffle: raffleAddr}, nil
}

func decodeBuyTickets(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	amount := d.U64()
	entrySeed := seed8(d)
	return &instructions.BuyTickets{
		Signer:    signer,
		Raffle:    raffleAddr,
		Amount:    amount,
		EntrySeed: entrySeed,
	}, nil
}

func decodeDrawWinningTicket(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	slotHashesAccount, err := accts.require(RoleSlotHashes)
	if err != nil {
		return nil, err
	}
	n := int(d.U64())
	hashes := make([]entropy.SlotHash, n)
	for i := range hashes {
		var h entropy.SlotHash
		copy(h[:], d.Fixed(32))
		hashes[i] = h
	}
	return &instructions.DrawWinningTicket{
		Raffle:            raffleAddr,
		SlotHashesAccount: slotHashesAccount,
		SlotHashes:        hashes,
	}, nil
}

func decodeSetWinner(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	return &instructions.SetWinner{Raffle: raffleAddr, EntrySeed: seed8(d)}, nil
}

func decodeSubmitWinnerData(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	return &instructions.SubmitWinnerData{Signer: signer, Raffle: raffleAddr, Data: d.String()}, nil
}

func decodeWithdrawFromTreasury(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	payoutAuthority, err := accts.require(RolePayoutAuthority)
	if err != nil {
		return nil, err
	}
	return &instructions.WithdrawFromTreasury{
		Signer:          signer,
		Raffle:          raffleAddr,
		PayoutAuthority: payoutAuthority,
	}, nil
}

func decodeExpireRaffle(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	return &instructions.ExpireRaffle{Raffle: raffleAddr}, nil
}

func decodeReclaimExpiredTickets(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	raffleAddr, err := accts.require(RoleRaffle)
	if err != nil {
		return nil, err
	}
	return &instructions.ReclaimExpiredTickets{Signer: signer, Raffle: raffleAddr}, nil
}

func decodeUpgradeConfig(accts Accounts, d *codec.Decoder) (raffle.Instruction, error) {
	signer, err := accts.require(RoleSigner)
	if err != nil {
		return nil, err
	}
	ix := &instructions.UpgradeConfig{Signer: signer}
	if newMgmt := d.OptionFixed(address.Size); newMgmt != nil {
		var a address.Address
		copy(a[:], newMgmt)
		ix.NewManagementAuthority = &a
	}
	if newPayout := d.OptionFixed(address.Size); newPayout != nil {
		var a address.Address
		copy(a[:], newPayout)
		ix.NewPayoutAuthority = &a
	}
	if newUpgrade := d.OptionFixed(address.Size); newUpgrade != nil {
		var a address.Address
		copy(a[:], newUpgrade)
		ix.NewUpgradeAuthority = &a
	}
	return ix, nil
}
