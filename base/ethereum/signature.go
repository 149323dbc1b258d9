package ethereum

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

var errUint256Range = fmt.Errorf("value out of uint256 range")

// PackUint256 left pads v to a 32-byte big-endian word.
func PackUint256(v *big.Int) ([]byte, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		return nil, errUint256Range
	}
	return math.PaddedBigBytes(v, 32), nil
}

// BidCommitmentHash is keccak256 over bidder | auctionId | bidAmount | highestBid
// in tight packing, the message an authority counter-signs for a relayed bid.
func BidCommitmentHash(bidder common.Address, auctionId common.Hash, bidAmount, highestBid *big.Int) ([]byte, error) {
	amount, err := PackUint256(bidAmount)
	if err != nil {
		return nil, err
	}
	highest, err := PackUint256(highestBid)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(bidder.Bytes(), auctionId.Bytes(), amount, highest), nil
}

// SignHash signs hash with the personal message prefix and returns a
// 65-byte signature with V in {27, 28}.
func SignHash(hash []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(hash), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// VerifyHashSignature reports whether sig over the prefixed hash recovers
// to pubKey. pubKey may be compressed or uncompressed.
func VerifyHashSignature(hash, sig, pubKey []byte) (bool, error) {
	expected, err := decodePubkey(pubKey)
	if err != nil {
		return false, err
	}
	recovered, err := ecRecover(accounts.TextHash(hash), sig)
	if err != nil {
		return false, err
	}
	return bytes.Equal(crypto.FromECDSAPub(expected), crypto.FromECDSAPub(recovered)), nil
}

// ValidateHashSignature checks a raw (unprefixed) hash signature against a signer address.
func ValidateHashSignature(hash, sig []byte, signer string) (bool, error) {
	recovered, err := ecRecover(hash, sig)
	if err != nil {
		return false, err
	}
	address := common.HexToAddress(signer)
	return bytes.Equal(address.Bytes(), crypto.PubkeyToAddress(*recovered).Bytes()), nil
}

func decodePubkey(pubKey []byte) (*ecdsa.PublicKey, error) {
	switch len(pubKey) {
	case 33:
		return crypto.DecompressPubkey(pubKey)
	case 64:
		return crypto.UnmarshalPubkey(append([]byte{0x04}, pubKey...))
	default:
		return crypto.UnmarshalPubkey(pubKey)
	}
}

// ecRecover returns the public key that was used to create the signature.
// adapted from go-ethereum internal/ethapi, it works on a copy of sig.
func ecRecover(data []byte, signature []byte) (*ecdsa.PublicKey, error) {
	if len(signature) != crypto.SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes long", crypto.SignatureLength)
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)

	// support both versions of `eth_sign` responses
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	if sig[crypto.RecoveryIDOffset] != 27 && sig[crypto.RecoveryIDOffset] != 28 {
		return nil, fmt.Errorf("invalid Ethereum signature (V is not 27 or 28)")
	}

	sig[crypto.RecoveryIDOffset] -= 27 // Transform yellow paper V from 27/28 to 0/1

	return crypto.SigToPub(data, sig)
}
