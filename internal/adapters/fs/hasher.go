// Package fs provides filesystem-backed fingerprinting of configurator inputs.
package fs

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// absentFileHash stands in for inputs that do not exist.
const absentFileHash uint64 = 0

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for configurator invocations.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
// A missing file hashes to absentFileHash.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return absentFileHash, nil
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint hashes the runner, the argument vector, the environment
// overrides and the contents of the application config, the ignore file and
// the configurator script.
func (h *Hasher) Fingerprint(ctx context.Context, inv *domain.Invocation) (string, error) {
	files := inputFiles(inv)
	sums := make([]uint64, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", errors.Join(domain.ErrFingerprintFailed, err)
	}

	digest := xxhash.New()
	writeString(digest, inv.RunnerPath)
	for _, arg := range inv.ConfiguratorArgs() {
		writeString(digest, arg)
	}

	keys := make([]string, 0, len(inv.Environment))
	for k := range inv.Environment {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		writeString(digest, k+"="+inv.Environment[k])
	}

	var buf [8]byte
	for _, sum := range sums {
		binary.LittleEndian.PutUint64(buf[:], sum)
		_, _ = digest.Write(buf[:])
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// inputFiles lists the files the configurator reads, resolved against the working directory.
func inputFiles(inv *domain.Invocation) []string {
	var appConfig, ignoreFile string
	for i := 0; i+1 < len(inv.Args); i++ {
		switch inv.Args[i] {
		case "-a":
			appConfig = inv.Args[i+1]
		case "-i":
			ignoreFile = inv.Args[i+1]
		}
	}

	files := make([]string, 0, 3)
	for _, p := range []string{appConfig, ignoreFile, inv.Configurator} {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) && inv.WorkingDir != "" {
			p = filepath.Join(inv.WorkingDir, p)
		}
		files = append(files, p)
	}
	return files
}

// writeString writes s followed by a NUL separator so adjacent values cannot collide.
func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}
