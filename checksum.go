package pathkit

import (
	"crypto/md5"  //nolint:gosec // MD5 used for fingerprints, not security
	"crypto/sha1" //nolint:gosec // SHA1 used for fingerprints, not security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ChecksumAlgorithm represents a supported checksum algorithm
type ChecksumAlgorithm string

const (
	// ChecksumMD5 is the MD5 hash algorithm (128-bit)
	ChecksumMD5 ChecksumAlgorithm = "md5"
	// ChecksumSHA1 is the SHA-1 hash algorithm (160-bit, legacy)
	ChecksumSHA1 ChecksumAlgorithm = "sha1"
	// ChecksumSHA256 is the SHA-256 hash algorithm (256-bit)
	ChecksumSHA256 ChecksumAlgorithm = "sha256"
	// ChecksumSHA512 is the SHA-512 hash algorithm (512-bit)
	ChecksumSHA512 ChecksumAlgorithm = "sha512"
	// ChecksumCRC32 is the CRC32 checksum (32-bit)
	ChecksumCRC32 ChecksumAlgorithm = "crc32"
	// ChecksumXXHash is the xxHash algorithm (64-bit, extremely fast)
	ChecksumXXHash ChecksumAlgorithm = "xxhash"
)

var hashers = map[ChecksumAlgorithm]func() hash.Hash{
	ChecksumMD5:    md5.New,  //nolint:gosec // fingerprints only
	ChecksumSHA1:   sha1.New, //nolint:gosec // fingerprints only
	ChecksumSHA256: sha256.New,
	ChecksumSHA512: sha512.New,
	ChecksumCRC32:  func() hash.Hash { return crc32.NewIEEE() },
	ChecksumXXHash: func() hash.Hash { return xxhash.New() },
}

// NewHasher returns a fresh hash.Hash for algorithm, or an error wrapping
// ErrNotSupported for an unknown name.
func NewHasher(algorithm ChecksumAlgorithm) (hash.Hash, error) {
	newHash, ok := hashers[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: checksum algorithm %q", ErrNotSupported, algorithm)
	}
	return newHash(), nil
}

// checksumText hashes the bytes of text as stored, with no encoding step.
func checksumText(text string, algorithm ChecksumAlgorithm) (string, error) {
	h, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}
	_, _ = io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil)), nil
}
