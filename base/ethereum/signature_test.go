package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidCommitmentSignature(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)

	bidder := common.HexToAddress("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	auctionId := common.HexToHash("0x7d4a470c1f919efbc629d12c57cf5dbc7eee958d0b6d787f842944c0be83c8c3")
	hash, err := BidCommitmentHash(bidder, auctionId, big.NewInt(100), big.NewInt(0))
	req.NoError(err)
	req.Len(hash, 32)

	sig, err := SignHash(hash, privateKey)
	req.NoError(err)
	sigCopy := append([]byte{}, sig...)

	ok, err := VerifyHashSignature(hash, sig, crypto.FromECDSAPub(publicKey))
	req.NoError(err)
	req.True(ok)
	req.Equal(sigCopy, sig, "signature must not be mutated")

	// compressed and 64-byte forms
	ok, err = VerifyHashSignature(hash, sig, crypto.CompressPubkey(publicKey))
	req.NoError(err)
	req.True(ok)
	ok, err = VerifyHashSignature(hash, sig, crypto.FromECDSAPub(publicKey)[1:])
	req.NoError(err)
	req.True(ok)

	// different bid amount
	other, err := BidCommitmentHash(bidder, auctionId, big.NewInt(101), big.NewInt(0))
	req.NoError(err)
	ok, err = VerifyHashSignature(other, sig, crypto.FromECDSAPub(publicKey))
	req.NoError(err)
	req.False(ok)

	// different authority
	_, otherKey, err := GenerateKey()
	req.NoError(err)
	ok, err = VerifyHashSignature(hash, sig, crypto.FromECDSAPub(otherKey))
	req.NoError(err)
	req.False(ok)
}

func TestVerifyHashSignatureMalformed(t *testing.T) {
	_, publicKey, err := GenerateKey()
	require.NoError(t, err)
	hash := crypto.Keccak256([]byte("x"))

	_, err = VerifyHashSignature(hash, []byte{1, 2, 3}, crypto.FromECDSAPub(publicKey))
	assert.Error(t, err)

	sig := make([]byte, 65)
	sig[64] = 30
	_, err = VerifyHashSignature(hash, sig, crypto.FromECDSAPub(publicKey))
	assert.Error(t, err)

	_, err = VerifyHashSignature(hash, make([]byte, 65), []byte{1})
	assert.Error(t, err)
}

func TestPackUint256(t *testing.T) {
	b, err := PackUint256(big.NewInt(1))
	assert.NoError(t, err)
	assert.Len(t, b, 32)
	assert.Equal(t, byte(1), b[31])

	_, err = PackUint256(big.NewInt(-1))
	assert.Error(t, err)

	_, err = PackUint256(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.Error(t, err)
}

func TestValidateHashSignature(t *testing.T) {
	req := require.New(t)
	hash := hexutil.MustDecode("0x7d4a470c1f919efbc629d12c57cf5dbc7eee958d0b6d787f842944c0be83c8c3")
	sig := hexutil.MustDecode("0xfae5218f6165f30bf7d8798d6f1990fde8fea58c336b36c8cd3078b4d8dc2a9d0448debd2b776fb0f6bdf91d1142474d4682057d290561814172bce4641108641c")
	signer := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	valid, err := ValidateHashSignature(hash, sig, signer)
	req.NoError(err)
	req.True(valid)
}
