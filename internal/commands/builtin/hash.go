package builtin

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/sha3"

	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

var hashers = map[string]func() hash.Hash{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha256":   sha256.New,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
	"sha3-512": sha3.New512,
}

// HashCommand hashes text with a digest algorithm, or with bcrypt.
type HashCommand struct{}

// Name returns the command name "hash" for registration and lookup.
func (c *HashCommand) Name() string {
	return "hash"
}

// Description returns a brief description of what the hash command does.
func (c *HashCommand) Description() string {
	return "Hash text with sha256, sha3, md5 or bcrypt"
}

// Usage returns the syntax for the hash command.
func (c *HashCommand) Usage() string {
	return "hash [--algo sha256|sha512|sha1|md5|sha3-256|sha3-512|bcrypt] [--check <bcrypt hash>] <text>"
}

// Execute prints the hex digest of the text. With --algo bcrypt it prints a bcrypt
// hash, or with --check it verifies the text against an existing bcrypt hash.
func (c *HashCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	line := parser.ParseArgs(args)
	text := strings.Join(line.Positional, " ")
	if text == "" {
		return "", usageError(c)
	}

	algo := strings.ToLower(line.String("algo", "sha256"))
	if algo == "bcrypt" || line.Has("check") {
		return c.bcryptHash(text, line.String("check", ""))
	}

	newHash, ok := hashers[algo]
	if !ok {
		return "", fmt.Errorf("unknown algorithm %q (available: %s, bcrypt)", algo, strings.Join(algorithms(), ", "))
	}
	h := newHash()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *HashCommand) bcryptHash(text, check string) (string, error) {
	if check != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(check), []byte(text)); err != nil {
			return "no match", nil
		}
		return "match", nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt failed: %w", err)
	}
	return string(hashed), nil
}

func algorithms() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
