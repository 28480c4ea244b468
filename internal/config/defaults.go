package config

import "github.com/spf13/viper"

// setDefaults sets every default value used when a config file is absent
// or leaves a key unset.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc.listen_addr", "127.0.0.1:5005")

	v.SetDefault("rent.base_lamports", uint64(890880))
	v.SetDefault("rent.lamports_per_byte", uint64(6960))

	v.SetDefault("ledger.entropy_cache_size", 256)
	v.SetDefault("ledger.account_cache_size", 4096)

	v.SetDefault("bootstrap_admin", "")
	v.SetDefault("bootstrap_payout_authority", "")
}
