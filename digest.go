package guidgen

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// HashAlgorithm selects the digest used for name-based generation.
type HashAlgorithm int

const (
	MD5 HashAlgorithm = iota + 1
	SHA1
	SHA256
	SHA384
	SHA512
	SHA3_256
	SHA3_384
	SHA3_512
	SHAKE128
	SHAKE256
)

var hashAlgorithmNames = map[HashAlgorithm]string{
	MD5:      "MD5",
	SHA1:     "SHA1",
	SHA256:   "SHA256",
	SHA384:   "SHA384",
	SHA512:   "SHA512",
	SHA3_256: "SHA3-256",
	SHA3_384: "SHA3-384",
	SHA3_512: "SHA3-512",
	SHAKE128: "SHAKE128",
	SHAKE256: "SHAKE256",
}

// String returns the algorithm name, such as "SHA3-256".
func (a HashAlgorithm) String() string {
	if name, ok := hashAlgorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("HashAlgorithm(%d)", int(a))
}

// ParseHashAlgorithm looks an algorithm up by its String form, ignoring a
// few spelling variants such as "sha-256" or "sha3_256".
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	key := normalizeAlgorithmName(name)
	for alg, n := range hashAlgorithmNames {
		if normalizeAlgorithmName(n) == key {
			return alg, nil
		}
	}
	return 0, newError("ParseHashAlgorithm", ErrInvalidArgument, fmt.Errorf("unknown hash algorithm %q", name))
}

func normalizeAlgorithmName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_' || c == ' ':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Version returns the UUID version produced with the algorithm:
// 3 for MD5, 5 for SHA-1 and 8 for every other algorithm.
func (a HashAlgorithm) Version() Version {
	switch a {
	case MD5:
		return VersionNameBasedMD5
	case SHA1:
		return VersionNameBasedSHA1
	default:
		return VersionCustom
	}
}

// DigestEngine hashes a namespace and a name down to 16 bytes.
//
// The input is the namespace in network byte order followed by the raw name.
// Engines are safe for concurrent use and take no locks.
type DigestEngine interface {
	Algorithm() HashAlgorithm
	Sum(namespace UUID, name []byte) [16]byte
}

// fixedDigest truncates a fixed-size digest to its first 16 bytes.
type fixedDigest struct {
	alg  HashAlgorithm
	pool sync.Pool
}

func newFixedDigest(alg HashAlgorithm, fn func() hash.Hash) *fixedDigest {
	d := &fixedDigest{alg: alg}
	d.pool.New = func() any { return fn() }
	return d
}

func (d *fixedDigest) Algorithm() HashAlgorithm { return d.alg }

func (d *fixedDigest) Sum(namespace UUID, name []byte) [16]byte {
	h := d.pool.Get().(hash.Hash)
	h.Reset()
	h.Write(namespace[:])
	h.Write(name)
	var buf [sha512.Size]byte
	sum := h.Sum(buf[:0])
	d.pool.Put(h)

	var out [16]byte
	copy(out[:], sum)
	return out
}

// xofDigest reads exactly 16 bytes from an extendable-output function.
type xofDigest struct {
	alg  HashAlgorithm
	pool sync.Pool
}

func newXOFDigest(alg HashAlgorithm, fn func() sha3.ShakeHash) *xofDigest {
	d := &xofDigest{alg: alg}
	d.pool.New = func() any { return fn() }
	return d
}

func (d *xofDigest) Algorithm() HashAlgorithm { return d.alg }

func (d *xofDigest) Sum(namespace UUID, name []byte) [16]byte {
	h := d.pool.Get().(sha3.ShakeHash)
	h.Reset()
	h.Write(namespace[:])
	h.Write(name)
	var out [16]byte
	h.Read(out[:])
	d.pool.Put(h)
	return out
}

var digestEngines = map[HashAlgorithm]DigestEngine{
	MD5:      newFixedDigest(MD5, md5.New),
	SHA1:     newFixedDigest(SHA1, sha1.New),
	SHA256:   newFixedDigest(SHA256, sha256.New),
	SHA384:   newFixedDigest(SHA384, sha512.New384),
	SHA512:   newFixedDigest(SHA512, sha512.New),
	SHA3_256: newFixedDigest(SHA3_256, sha3.New256),
	SHA3_384: newFixedDigest(SHA3_384, sha3.New384),
	SHA3_512: newFixedDigest(SHA3_512, sha3.New512),
	SHAKE128: newXOFDigest(SHAKE128, sha3.NewShake128),
	SHAKE256: newXOFDigest(SHAKE256, sha3.NewShake256),
}

// Digester returns the DigestEngine for alg.
func Digester(alg HashAlgorithm) (DigestEngine, error) {
	d, ok := digestEngines[alg]
	if !ok {
		return nil, newError("Digester", ErrInvalidArgument, fmt.Errorf("unknown hash algorithm %d", int(alg)))
	}
	return d, nil
}

// Digest hashes namespace and name with alg and returns the first 16 bytes.
func Digest(alg HashAlgorithm, namespace UUID, name []byte) ([16]byte, error) {
	d, err := Digester(alg)
	if err != nil {
		return [16]byte{}, err
	}
	return d.Sum(namespace, name), nil
}
