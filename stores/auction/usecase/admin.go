package usecase

import (
	"errors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/base/log"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
)

// Admin setters trust their caller; gating happens at the delivery layer.

func (im *impl) SetBiddingAllowed(c ctx.Ctx, ref auction.ContractRef, allowed bool) error {
	return im.atomic(c, func() error {
		contract, err := im.store.FindContract(c, ref)
		if errors.Is(err, domain.ErrNotFound) {
			contract = &auction.Contract{Ref: ref}
		} else if err != nil {
			return err
		}
		contract.BiddingAllowed = allowed
		if err := im.store.SaveContract(c, *contract); err != nil {
			c.WithFields(log.Fields{"err": err, "ref": ref}).Error("store.SaveContract failed")
			return err
		}
		im.emit(auction.BiddingAllowed{ContractRef: ref, Contract: contract.Address, Allowed: allowed})
		return nil
	})
}

func (im *impl) SetAuctionBiddingAllowed(c ctx.Ctx, id auction.Id, allowed bool) error {
	return im.atomic(c, func() error {
		a, err := im.findAuction(c, id)
		if err != nil {
			return err
		}
		a.BiddingAllowed = allowed
		if err := im.store.SaveAuction(c, a); err != nil {
			c.WithFields(log.Fields{"err": err, "auctionId": id}).Error("store.SaveAuction failed")
			return err
		}
		im.emit(auction.BiddingAllowed{ContractRef: a.ContractRef, Contract: a.ContractAddress, AuctionId: id, Allowed: allowed})
		return nil
	})
}

// EnableContract registers the item contract behind ref once.
func (im *impl) EnableContract(c ctx.Ctx, ref auction.ContractRef, address domain.Address) error {
	if address.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	return im.atomic(c, func() error {
		contract, err := im.store.FindContract(c, ref)
		if errors.Is(err, domain.ErrNotFound) {
			contract = &auction.Contract{Ref: ref, BiddingAllowed: true}
		} else if err != nil {
			return err
		}
		if !contract.Address.IsEmpty() {
			return domain.ErrContractEnabled
		}
		contract.Address = address.ToLower()
		if err := im.store.SaveContract(c, *contract); err != nil {
			c.WithFields(log.Fields{"err": err, "ref": ref}).Error("store.SaveContract failed")
			return err
		}
		return nil
	})
}

// SetPreset stores p under id. A preset with IncMin 0 is undefined, a
// defined one needs a non-zero decimals base.
func (im *impl) SetPreset(c ctx.Ctx, id auction.PresetId, p auction.Preset) error {
	if p.Defined() && p.BidDecimals < 1 {
		return domain.ErrBadParamInput
	}
	if p.HammerTimeDuration < 0 {
		return domain.ErrBadParamInput
	}
	return im.atomic(c, func() error {
		if err := im.store.SavePreset(c, id, p); err != nil {
			c.WithFields(log.Fields{"err": err, "presetId": id}).Error("store.SavePreset failed")
			return err
		}
		return nil
	})
}
