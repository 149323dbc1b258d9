package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/auction"
	"github.com/x-xyz/gbm/service/query"
)

type auctionDoc struct {
	Id              auction.Id          `bson:"_id"`
	Owner           domain.Address      `bson:"owner"`
	ContractRef     auction.ContractRef `bson:"contractRef"`
	ContractAddress domain.Address      `bson:"contractAddress"`
	PresetId        auction.PresetId    `bson:"presetId"`
	Info            auction.Info        `bson:"info"`
	HighestBidder   domain.Address      `bson:"highestBidder"`
	HighestBid      string              `bson:"highestBid"`
	AuctionDebt     string              `bson:"auctionDebt"`
	DueIncentives   string              `bson:"dueIncentives"`
	BiddingAllowed  bool                `bson:"biddingAllowed"`
	Claimed         bool                `bson:"claimed"`
}

type presetDoc struct {
	Id             auction.PresetId `bson:"_id"`
	auction.Preset `bson:",inline"`
}

type contractDoc struct {
	Ref              auction.ContractRef `bson:"_id"`
	auction.Contract `bson:",inline"`
}

func toAuctionDoc(a *auction.Auction) auctionDoc {
	return auctionDoc{
		Id:              a.Id,
		Owner:           a.Owner,
		ContractRef:     a.ContractRef,
		ContractAddress: a.ContractAddress,
		PresetId:        a.PresetId,
		Info:            a.Info,
		HighestBidder:   a.HighestBidder,
		HighestBid:      bigString(a.HighestBid),
		AuctionDebt:     bigString(a.AuctionDebt),
		DueIncentives:   bigString(a.DueIncentives),
		BiddingAllowed:  a.BiddingAllowed,
		Claimed:         a.Claimed,
	}
}

func (d auctionDoc) toAuction() (*auction.Auction, error) {
	highestBid, ok1 := new(big.Int).SetString(d.HighestBid, 10)
	debt, ok2 := new(big.Int).SetString(d.AuctionDebt, 10)
	due, ok3 := new(big.Int).SetString(d.DueIncentives, 10)
	if !ok1 || !ok2 || !ok3 {
		return nil, xerrors.Errorf("auction %s: malformed amount", d.Id)
	}
	return &auction.Auction{
		Id:              d.Id,
		Owner:           d.Owner,
		ContractRef:     d.ContractRef,
		ContractAddress: d.ContractAddress,
		PresetId:        d.PresetId,
		Info:            d.Info,
		HighestBidder:   d.HighestBidder,
		HighestBid:      highestBid,
		AuctionDebt:     debt,
		DueIncentives:   due,
		BiddingAllowed:  d.BiddingAllowed,
		Claimed:         d.Claimed,
	}, nil
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

type mongoImpl struct {
	q query.Mongo
}

// NewMongoPersister stores committed auction state in mongo. Records are
// never deleted, a claimed auction stays queryable.
func NewMongoPersister(q query.Mongo) auction.Persister {
	return &mongoImpl{q}
}

func (im *mongoImpl) Persist(c ctx.Ctx, changes *auction.StateSet) error {
	if changes.Empty() {
		return nil
	}
	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		for _, a := range changes.Auctions {
			if err := im.q.Upsert(c, domain.TableAuctions, bson.M{"_id": a.Id}, toAuctionDoc(a)); err != nil {
				return err
			}
		}
		for id, p := range changes.Presets {
			if err := im.q.Upsert(c, domain.TableAuctionPresets, bson.M{"_id": id}, presetDoc{Id: id, Preset: p}); err != nil {
				return err
			}
		}
		for _, contract := range changes.Contracts {
			if err := im.q.Upsert(c, domain.TableAuctionContract, bson.M{"_id": contract.Ref}, contractDoc{Ref: contract.Ref, Contract: contract}); err != nil {
				return err
			}
		}
		for _, counter := range changes.Counters {
			if err := im.q.Upsert(c, domain.TableIssuanceCounter, bson.M{"key": counter.Key}, counter); err != nil {
				return err
			}
		}
		return nil
	})
}

func (im *mongoImpl) LoadAll(c ctx.Ctx) (*auction.StateSet, error) {
	res := &auction.StateSet{Presets: make(map[auction.PresetId]auction.Preset)}

	auctions := []auctionDoc{}
	if err := im.q.Search(c, domain.TableAuctions, 0, 0, "_id", bson.M{}, &auctions); err != nil {
		c.WithField("err", err).Error("q.Search auctions failed")
		return nil, err
	}
	for _, d := range auctions {
		a, err := d.toAuction()
		if err != nil {
			return nil, err
		}
		res.Auctions = append(res.Auctions, a)
	}

	presets := []presetDoc{}
	if err := im.q.Search(c, domain.TableAuctionPresets, 0, 0, "_id", bson.M{}, &presets); err != nil {
		c.WithField("err", err).Error("q.Search presets failed")
		return nil, err
	}
	for _, p := range presets {
		res.Presets[p.Id] = p.Preset
	}

	contracts := []contractDoc{}
	if err := im.q.Search(c, domain.TableAuctionContract, 0, 0, "_id", bson.M{}, &contracts); err != nil {
		c.WithField("err", err).Error("q.Search contracts failed")
		return nil, err
	}
	for _, d := range contracts {
		res.Contracts = append(res.Contracts, d.Contract)
	}

	if err := im.q.Search(c, domain.TableIssuanceCounter, 0, 0, "", bson.M{}, &res.Counters); err != nil {
		c.WithField("err", err).Error("q.Search counters failed")
		return nil, err
	}
	return res, nil
}
