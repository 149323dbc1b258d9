package memory

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
	"github.com/x-xyz/gbm/domain/ledger"
)

const (
	alice    = domain.Address("0x00000000000000000000000000000000000000b1")
	bob      = domain.Address("0x00000000000000000000000000000000000000b2")
	escrow   = domain.Address("0x00000000000000000000000000000000000000e0")
	itemsNft = domain.Address("0x00000000000000000000000000000000000000c1")
)

type countingReceiver struct {
	accept bool
	calls  int
}

func (r *countingReceiver) magic(v [4]byte) [4]byte {
	r.calls++
	if r.accept {
		return v
	}
	return [4]byte{}
}

func (r *countingReceiver) OnErc721Received(c ctx.Ctx, operator, from domain.Address, tokenId *big.Int, data []byte) [4]byte {
	return r.magic(ledger.Erc721Received)
}

func (r *countingReceiver) OnErc1155Received(c ctx.Ctx, operator, from domain.Address, tokenId, amount *big.Int, data []byte) [4]byte {
	return r.magic(ledger.Erc1155Received)
}

func (r *countingReceiver) OnErc1155BatchReceived(c ctx.Ctx, operator, from domain.Address, tokenIds, amounts []*big.Int, data []byte) [4]byte {
	return r.magic(ledger.Erc1155BatchReceived)
}

func balanceOf(t *testing.T, e *Erc20, owner domain.Address) int64 {
	v, err := e.BalanceOf(ctx.Background(), owner)
	require.NoError(t, err)
	return v.Int64()
}

func TestErc20TransferFrom(t *testing.T) {
	c := ctx.Background()
	e := NewErc20()
	e.Mint(alice, big.NewInt(100))
	e.Approve(alice, escrow, big.NewInt(60))

	assert.ErrorIs(t, e.TransferFrom(c, escrow, alice, escrow, big.NewInt(61)), domain.ErrInsufficientAllowed)
	require.NoError(t, e.TransferFrom(c, escrow, alice, escrow, big.NewInt(60)))
	assert.Equal(t, int64(40), balanceOf(t, e, alice))
	assert.Equal(t, int64(60), balanceOf(t, e, escrow))
	assert.ErrorIs(t, e.TransferFrom(c, escrow, alice, escrow, big.NewInt(1)), domain.ErrInsufficientAllowed)

	assert.ErrorIs(t, e.Transfer(c, alice, bob, big.NewInt(41)), domain.ErrInsufficientBalance)
	assert.ErrorIs(t, e.Transfer(c, alice, "", big.NewInt(1)), domain.ErrInvalidAddress)
	assert.ErrorIs(t, e.Transfer(c, alice, bob, big.NewInt(-1)), domain.ErrBadParamInput)
	require.NoError(t, e.Transfer(c, alice, bob, big.NewInt(40)))
	assert.Equal(t, int64(40), balanceOf(t, e, bob))
}

func TestErc20Journal(t *testing.T) {
	c := ctx.Background()
	e := NewErc20()
	e.Mint(alice, big.NewInt(100))
	e.Commit()

	snap := e.Snapshot()
	require.NoError(t, e.Transfer(c, alice, bob, big.NewInt(30)))
	e.Approve(alice, escrow, big.NewInt(5))
	e.RevertToSnapshot(snap)

	assert.Equal(t, int64(100), balanceOf(t, e, alice))
	assert.Equal(t, int64(0), balanceOf(t, e, bob))
	assert.ErrorIs(t, e.TransferFrom(c, escrow, alice, escrow, big.NewInt(1)), domain.ErrInsufficientAllowed)
}

func TestErc20Hook(t *testing.T) {
	c := ctx.Background()
	e := NewErc20()
	e.Mint(alice, big.NewInt(10))
	boom := errors.New("boom")
	e.SetHook(func(c ctx.Ctx, from, to domain.Address, amount *big.Int) error {
		return boom
	})
	assert.ErrorIs(t, e.Transfer(c, alice, bob, big.NewInt(1)), boom)
}

func TestErc721Custody(t *testing.T) {
	c := ctx.Background()
	receivers := NewReceivers()
	r := &countingReceiver{accept: true}
	receivers.Register(escrow, r)

	e := NewErc721(receivers)
	tokenId := big.NewInt(7)
	require.NoError(t, e.Mint(alice, tokenId))
	assert.ErrorIs(t, e.Mint(bob, tokenId), domain.ErrBadParamInput)

	assert.ErrorIs(t, e.SafeTransferFrom(c, escrow, alice, escrow, tokenId, nil), domain.ErrInsufficientAllowed)
	assert.ErrorIs(t, e.SafeTransferFrom(c, bob, bob, escrow, tokenId, nil), domain.ErrNotTokenOwner)

	e.SetApprovalForAll(alice, escrow, true)
	require.NoError(t, e.SafeTransferFrom(c, escrow, alice, escrow, tokenId, nil))
	owner, err := e.OwnerOf(c, tokenId)
	require.NoError(t, err)
	assert.Equal(t, escrow, owner)
	assert.Equal(t, 1, r.calls)

	_, err = e.OwnerOf(c, big.NewInt(8))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestErc721RejectedByReceiver(t *testing.T) {
	c := ctx.Background()
	receivers := NewReceivers()
	receivers.Register(bob, &countingReceiver{})

	e := NewErc721(receivers)
	tokenId := big.NewInt(1)
	require.NoError(t, e.Mint(alice, tokenId))
	snap := e.Snapshot()
	assert.ErrorIs(t, e.SafeTransferFrom(c, alice, alice, bob, tokenId, nil), domain.ErrRejectedByReceiver)

	e.RevertToSnapshot(snap)
	owner, err := e.OwnerOf(c, tokenId)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
}

func TestErc1155Custody(t *testing.T) {
	c := ctx.Background()
	receivers := NewReceivers()
	r := &countingReceiver{accept: true}
	receivers.Register(escrow, r)

	e := NewErc1155(receivers)
	tokenId := big.NewInt(3)
	e.Mint(alice, tokenId, big.NewInt(10))
	e.SetApprovalForAll(alice, escrow, true)

	assert.ErrorIs(t, e.SafeTransferFrom(c, escrow, alice, escrow, tokenId, big.NewInt(11), nil), domain.ErrInsufficientTokens)
	assert.ErrorIs(t, e.SafeTransferFrom(c, bob, alice, bob, tokenId, big.NewInt(1), nil), domain.ErrInsufficientAllowed)
	require.NoError(t, e.SafeTransferFrom(c, escrow, alice, escrow, tokenId, big.NewInt(4), nil))

	held, err := e.BalanceOf(c, escrow, tokenId)
	require.NoError(t, err)
	assert.Equal(t, int64(4), held.Int64())
	left, err := e.BalanceOf(c, alice, tokenId)
	require.NoError(t, err)
	assert.Equal(t, int64(6), left.Int64())
	assert.Equal(t, 1, r.calls)
}

func TestProvider(t *testing.T) {
	c := ctx.Background()
	p := NewProvider()
	nft := NewErc721(nil)
	p.AddErc721(domain.Address("0x00000000000000000000000000000000000000C1"), nft)

	l, err := p.Erc721(c, itemsNft)
	require.NoError(t, err)
	assert.Equal(t, nft, l)

	_, err = p.Erc1155(c, itemsNft)
	assert.ErrorIs(t, err, domain.ErrNoSecondaryMarket)
	assert.Len(t, p.Journals(), 1)
}
