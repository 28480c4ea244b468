package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
)

// Config is the singleton record at seed ("config",) — spec §3. It is
// created exactly once; the creating signer becomes the initial upgrade
// authority.
type Config struct {
	ManagementAuthority address.Address
	PayoutAuthority      address.Address
	UpgradeAuthority     address.Address
	RaffleCounter        uint64
	Bump                 uint8
}

func (c *Config) Encode() []byte {
	return codec.NewEncoder(codec.DiscConfig).
		PutFixed(c.ManagementAuthority.Bytes()).
		PutFixed(c.PayoutAuthority.Bytes()).
		PutFixed(c.UpgradeAuthority.Bytes()).
		PutU64(c.RaffleCounter).
		PutU8(c.Bump).
		Bytes()
}

func DecodeConfig(data []byte) (*Config, error) {
	d, err := codec.NewDecoder(data, codec.DiscConfig)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	mgmt, _ := address.FromBytes(d.Fixed(address.Size))
	payout, _ := address.FromBytes(d.Fixed(address.Size))
	upgrade, _ := address.FromBytes(d.Fixed(address.Size))
	c.ManagementAuthority = mgmt
	c.PayoutAuthority = payout
	c.UpgradeAuthority = upgrade
	c.RaffleCounter = d.U64()
	c.Bump = d.U8()
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return c, nil
}
