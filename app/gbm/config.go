package main

import (
	"math/big"
	"strconv"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/service/ledger/memory"
)

type presetCfg struct {
	HammerTimeDuration int64  `mapstructure:"hammerTimeDuration"`
	BidDecimals        uint64 `mapstructure:"bidDecimals"`
	StepMin            uint64 `mapstructure:"stepMin"`
	IncMin             uint64 `mapstructure:"incMin"`
	IncMax             uint64 `mapstructure:"incMax"`
	BidMultiplier      uint64 `mapstructure:"bidMultiplier"`
}

type contractCfg struct {
	Address        string `mapstructure:"address"`
	BiddingAllowed bool   `mapstructure:"biddingAllowed"`
}

type holdingCfg struct {
	Owner   string `mapstructure:"owner"`
	TokenId string `mapstructure:"tokenId"`
	Amount  string `mapstructure:"amount"`
}

// ledgerCfg seeds the in-memory ledgers of a dev deployment.
type ledgerCfg struct {
	Balances map[string]string       `mapstructure:"balances"`
	Erc721   map[string][]holdingCfg `mapstructure:"erc721"`
	Erc1155  map[string][]holdingCfg `mapstructure:"erc1155"`
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, xerrors.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// buildLedgers creates the settlement currency and item ledgers. Every
// seeded holder approves the engine for its whole balance.
func buildLedgers(engine domain.Address, receivers *memory.Receivers) (*memory.Erc20, *memory.Provider, error) {
	cfg := ledgerCfg{}
	if err := viper.UnmarshalKey("ledger", &cfg); err != nil {
		return nil, nil, err
	}

	currency := memory.NewErc20()
	for owner, amount := range cfg.Balances {
		v, err := parseBig(amount)
		if err != nil {
			return nil, nil, err
		}
		currency.Mint(domain.Address(owner), v)
		currency.Approve(domain.Address(owner), engine, v)
	}

	currency.Commit()

	provider := memory.NewProvider()
	for contract, holdings := range cfg.Erc721 {
		l := memory.NewErc721(receivers)
		for _, h := range holdings {
			tokenId, err := parseBig(h.TokenId)
			if err != nil {
				return nil, nil, err
			}
			if err := l.Mint(domain.Address(h.Owner), tokenId); err != nil {
				return nil, nil, xerrors.Errorf("mint %s/%s: %w", contract, h.TokenId, err)
			}
			l.SetApprovalForAll(domain.Address(h.Owner), engine, true)
		}
		l.Commit()
		provider.AddErc721(domain.Address(contract), l)
	}
	for contract, holdings := range cfg.Erc1155 {
		l := memory.NewErc1155(receivers)
		for _, h := range holdings {
			tokenId, err := parseBig(h.TokenId)
			if err != nil {
				return nil, nil, err
			}
			amount, err := parseBig(h.Amount)
			if err != nil {
				return nil, nil, err
			}
			l.Mint(domain.Address(h.Owner), tokenId, amount)
			l.SetApprovalForAll(domain.Address(h.Owner), engine, true)
		}
		l.Commit()
		provider.AddErc1155(domain.Address(contract), l)
	}

	return currency, provider, nil
}

// bootstrap applies configured presets and contract registrations.
// Contracts already enabled by persisted state are left alone.
func bootstrap(c ctx.Ctx, uc auction.UseCase) error {
	presets := map[string]presetCfg{}
	if err := viper.UnmarshalKey("presets", &presets); err != nil {
		return err
	}
	for k, p := range presets {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return xerrors.Errorf("preset id %q: %w", k, err)
		}
		if err := uc.SetPreset(c, auction.PresetId(id), auction.Preset{
			HammerTimeDuration: p.HammerTimeDuration,
			BidDecimals:        p.BidDecimals,
			StepMin:            p.StepMin,
			IncMin:             p.IncMin,
			IncMax:             p.IncMax,
			BidMultiplier:      p.BidMultiplier,
		}); err != nil {
			return xerrors.Errorf("preset %d: %w", id, err)
		}
	}

	contracts := map[string]contractCfg{}
	if err := viper.UnmarshalKey("contracts", &contracts); err != nil {
		return err
	}
	for k, cc := range contracts {
		ref, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return xerrors.Errorf("contract ref %q: %w", k, err)
		}
		err = uc.EnableContract(c, auction.ContractRef(ref), domain.Address(cc.Address))
		if err != nil && !xerrors.Is(err, domain.ErrContractEnabled) {
			return xerrors.Errorf("contract %d: %w", ref, err)
		}
		if err == nil && !cc.BiddingAllowed {
			if err := uc.SetBiddingAllowed(c, auction.ContractRef(ref), false); err != nil {
				return err
			}
		}
	}
	return nil
}
