// Command mccipher encrypts or decrypts a byte stream the way a
// Minecraft connection would: AES/CFB8 keyed by a 16-byte shared
// secret, optionally with zlib compression underneath the cipher.
// Reads stdin, writes stdout.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/OCharnyshevich/minecraft-natives/pkg/compression"
	"github.com/OCharnyshevich/minecraft-natives/pkg/encryption"
)

func main() {
	keyHex := flag.String("key", "", "shared secret as 32 hex characters")
	decrypt := flag.Bool("d", false, "decrypt instead of encrypt")
	useZlib := flag.Bool("z", false, "zlib-compress the payload before encrypting (and decompress after decrypting)")
	level := flag.Int("level", compression.DefaultLevel, "zlib compression level")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	secret, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid key", "error", err)
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, secret, *decrypt, *useZlib, *level); err != nil {
		log.Error("processing stream", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, secret []byte, decrypt, useZlib bool, level int) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if decrypt {
		c, err := encryption.NewCipher(secret, encryption.Decrypt)
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.Process(data, data); err != nil {
			return err
		}
		if useZlib {
			data, err = unpack(data)
			if err != nil {
				return err
			}
		}
		_, err = out.Write(data)
		return err
	}

	if useZlib {
		data, err = pack(data, level)
		if err != nil {
			return err
		}
	}
	c, err := encryption.NewCipher(secret, encryption.Encrypt)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Process(data, data); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// pack compresses data, prefixed with its uncompressed size so unpack
// can inflate into an exactly sized buffer.
func pack(data []byte, level int) ([]byte, error) {
	d, err := compression.NewDeflater(level)
	if err != nil {
		return nil, err
	}
	packed, err := d.Deflate(data)
	if err != nil {
		return nil, err
	}
	framed := make([]byte, 4+len(packed))
	binary.BigEndian.PutUint32(framed, uint32(len(data)))
	copy(framed[4:], packed)
	return framed, nil
}

func unpack(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("input shorter than size prefix")
	}
	plain := make([]byte, binary.BigEndian.Uint32(data))
	if err := compression.NewInflater().Inflate(plain, data[4:]); err != nil {
		return nil, err
	}
	return plain, nil
}
