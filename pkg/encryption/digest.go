package encryption

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"fmt"
	"math/big"
)

// ServerIDHash computes the Minecraft-style SHA-1 hex digest sent to
// the session server: the hash interpreted as a signed two's complement
// integer, rendered in hex with no zero-padding and a "-" prefix when
// negative.
func ServerIDHash(serverID string, sharedSecret, publicKeyDER []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(publicKeyDER)
	sum := h.Sum(nil)

	n := new(big.Int).SetBytes(sum)
	if sum[0]&0x80 != 0 {
		// Negative in two's complement: n -= 2^160.
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), 160))
	}
	return n.Text(16)
}

// GenerateKeyPair creates the RSA keypair a server advertises during
// the login handshake, returning the private key together with the
// PKIX DER encoding of the public key (the form the EncryptionRequest
// packet carries). Vanilla servers use 1024 bits.
func GenerateKeyPair(bits int) (*rsa.PrivateKey, []byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("generate RSA key: %w", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal public key: %w", err)
	}
	return key, der, nil
}

// DecryptSharedSecret decrypts the client's RSA-encrypted shared secret
// from the EncryptionResponse packet. The legacy protocol uses PKCS#1
// v1.5 padding.
func DecryptSharedSecret(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	secret, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt shared secret: %w", err)
	}
	return secret, nil
}
