package encryption

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"
)

func TestServerIDHash(t *testing.T) {
	// Test vectors from wiki.vg: the username as the serverID input,
	// empty sharedSecret and publicKey.
	tests := []struct {
		name string
		want string
	}{
		{"Notch", "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48"},
		{"jeb_", "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1"},
		{"simon", "88e16a1019277b15d58faf0541e11910eb756f6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServerIDHash(tt.name, nil, nil)
			if got != tt.want {
				t.Errorf("ServerIDHash(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeyPairSharedSecretRoundTrip(t *testing.T) {
	priv, der, err := GenerateKeyPair(1024)
	if err != nil {
		t.Fatal(err)
	}

	// The DER form must parse back to the same public key.
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		t.Fatalf("parse public key DER: %v", err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		t.Fatalf("DER decoded to %T, want *rsa.PublicKey", parsed)
	}

	// Encrypt a shared secret the way a client would, decrypt it the
	// way the server does.
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		t.Fatal(err)
	}
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, secret)
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecryptSharedSecret(priv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("decrypted secret mismatch\ngot:  %x\nwant: %x", got, secret)
	}
}
