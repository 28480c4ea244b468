package di

import (
	"time"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/config"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
	"github.com/viralvaultgg/solana-program/internal/server/api/jsonrpc"
)

// Provider wires raffled's services (ledger store, clock, entropy
// source, rent model, RPC handler) into a Container. Every service but
// the RPC server is built eagerly in RegisterAll; the RPC server is
// registered as a builder and built on first GetRPCServer call.
type Provider struct {
	container *Container
	config    *config.Config
}

// NewProvider creates a service provider bound to cfg.
func NewProvider(container *Container, cfg *config.Config) *Provider {
	return &Provider{container: container, config: cfg}
}

// RegisterAll registers every service the serve command depends on.
// simulate builds its own store, entropy source and rent model instead.
func (p *Provider) RegisterAll() error {
	p.container.Register(ServiceConfig, p.config)

	programID, err := p.config.ProgramAddress()
	if err != nil {
		return err
	}

	store := ledger.NewStore()
	p.container.Register(ServiceLedger, store)

	ent := entropy.NewSource(p.config.Ledger.EntropyCacheSize)
	p.container.Register(ServiceEntropy, ent)

	rent := raffle.FixedRentModel{
		BaseLamports:    p.config.Rent.BaseLamports,
		LamportsPerByte: p.config.Rent.LamportsPerByte,
	}
	p.container.Register(ServiceRentModel, rent)

	now := func() int64 { return time.Now().Unix() }
	p.container.Register(ServiceClock, now)

	p.container.RegisterBuilder(ServiceRPCServer, func(c *Container) (interface{}, error) {
		handler := jsonrpc.NewHandler(store, programID, rent, ent, now)
		return jsonrpc.NewServer(handler), nil
	})

	return nil
}

// GetLedger returns the registered ledger store.
func (p *Provider) GetLedger() (*ledger.Store, error) {
	v, err := p.container.Get(ServiceLedger)
	if err != nil {
		return nil, err
	}
	return v.(*ledger.Store), nil
}

// GetRPCServer returns the registered JSON-RPC server, building it on
// first use.
func (p *Provider) GetRPCServer() (*jsonrpc.Server, error) {
	v, err := p.container.Get(ServiceRPCServer)
	if err != nil {
		return nil, err
	}
	return v.(*jsonrpc.Server), nil
}

// GetConfig returns the bound configuration.
func (p *Provider) GetConfig() *config.Config {
	return p.config
}

// ProgramID parses and returns the configured program address.
func (p *Provider) ProgramID() (address.Address, error) {
	return p.config.ProgramAddress()
}
