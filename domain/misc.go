package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)
)

type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)

// Selector returns the 4-byte tag mixed into auction identifiers.
func (t TokenType) Selector() ([4]byte, bool) {
	switch t {
	case TokenType721:
		return [4]byte{0x73, 0xad, 0x21, 0x46}, true
	case TokenType1155:
		return [4]byte{0x97, 0x3b, 0xb6, 0x40}, true
	}
	return [4]byte{}, false
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty treats both "" and the zero address as unset.
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, bool) {
	return new(big.Int).SetString(i.String(), 10)
}

type BlockNumber uint64

type Table string

const (
	TableAuctions        Table = "gbm_auctions"
	TableAuctionPresets  Table = "gbm_presets"
	TableAuctionContract Table = "gbm_contracts"
	TableIssuanceCounter Table = "gbm_issuance_counters"
)
