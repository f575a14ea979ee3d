package lock

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"golang.org/x/crypto/sha3"
)

// ProofSize is the length of generated proofs in bytes.
const ProofSize = 20

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported lock hash algorithm")
	ErrSecretMismatch       = errors.New("proof does not hash to secret")
)

// Algorithm is the lock hash algorithm tag used on the wire.
type Algorithm uint8

const (
	AlgorithmSHA3256 Algorithm = 0
	AlgorithmHash160 Algorithm = 1
	AlgorithmHash256 Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmSHA3256:
		return "SHA3_256"
	case AlgorithmHash160:
		return "HASH_160"
	case AlgorithmHash256:
		return "HASH_256"
	default:
		return fmt.Sprintf("algorithm_%d", uint8(a))
	}
}

// ParseAlgorithm accepts the wire tag or its name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0", "SHA3_256", "SHA3-256":
		return AlgorithmSHA3256, nil
	case "1", "HASH_160", "HASH160":
		return AlgorithmHash160, nil
	case "2", "HASH_256", "HASH256", "SHA256":
		return AlgorithmHash256, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// SecretSize returns the digest length produced by the algorithm.
func (a Algorithm) SecretSize() (int, error) {
	switch a {
	case AlgorithmSHA3256, AlgorithmHash256:
		return 32, nil
	case AlgorithmHash160:
		return 20, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, uint8(a))
	}
}

// Digest hashes proof with the algorithm.
func (a Algorithm) Digest(proof []byte) ([]byte, error) {
	switch a {
	case AlgorithmSHA3256:
		sum := sha3.Sum256(proof)
		return sum[:], nil
	case AlgorithmHash256:
		sum := sha256.Sum256(proof)
		return sum[:], nil
	case AlgorithmHash160:
		return btcutil.Hash160(proof), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, uint8(a))
	}
}

// SecretProofPair binds a proof to the secret it unlocks.
type SecretProofPair struct {
	Secret    []byte
	Proof     []byte
	Algorithm Algorithm
}

func (p SecretProofPair) SecretHex() string { return strings.ToUpper(hex.EncodeToString(p.Secret)) }
func (p SecretProofPair) ProofHex() string  { return strings.ToUpper(hex.EncodeToString(p.Proof)) }

// GenerateSecretProof draws a fresh random proof and derives its secret.
func GenerateSecretProof(algorithm Algorithm) (SecretProofPair, error) {
	return generateSecretProof(rand.Reader, algorithm)
}

func generateSecretProof(r io.Reader, algorithm Algorithm) (SecretProofPair, error) {
	if _, err := algorithm.SecretSize(); err != nil {
		return SecretProofPair{}, err
	}
	proof := make([]byte, ProofSize)
	if _, err := io.ReadFull(r, proof); err != nil {
		return SecretProofPair{}, fmt.Errorf("read random proof: %w", err)
	}
	return SecretProofFromProof(proof, algorithm)
}

// SecretProofFromProof derives the secret for an existing proof.
func SecretProofFromProof(proof []byte, algorithm Algorithm) (SecretProofPair, error) {
	secret, err := algorithm.Digest(proof)
	if err != nil {
		return SecretProofPair{}, err
	}
	return SecretProofPair{
		Secret:    secret,
		Proof:     append([]byte(nil), proof...),
		Algorithm: algorithm,
	}, nil
}

// VerifySecretProof reports ErrSecretMismatch if proof does not hash to secret.
func VerifySecretProof(secret, proof []byte, algorithm Algorithm) error {
	digest, err := algorithm.Digest(proof)
	if err != nil {
		return err
	}
	if !bytes.Equal(digest, secret) {
		return ErrSecretMismatch
	}
	return nil
}
