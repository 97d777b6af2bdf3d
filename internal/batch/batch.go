// Package batch generates many ML-KEM key pairs concurrently, tagging
// each with a correlation ID suitable for provisioning logs.
//
// Grounded on cloudflare-cloudflared's supervisor/tunnel.go, which wraps
// a fixed set of concurrent workers in an errgroup.WithContext so the
// first failure cancels the rest; here the "workers" are key-generation
// calls instead of tunnel connections.
package batch

import (
	"context"
	"crypto/rand"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	mlkem "github.com/Gvinfinity/ml-kem-rs"
)

// Result is one key pair out of a batch, tagged with a UUID so a caller
// can correlate it with an external provisioning record.
type Result struct {
	ID uuid.UUID
	Ek *mlkem.EncapsKey
	Dk *mlkem.DecapsKey
}

// Generate runs n independent ML-KEM key generations for the given
// profile concurrently, returning once every goroutine has finished.
// Each generation checks ctx before it starts and returns ctx's error if
// it is already canceled; a generation in progress runs to completion.
// If any generation fails, Generate returns the first error
// and the partial results are discarded, matching errgroup's
// fail-fast semantics.
func Generate(ctx context.Context, profile mlkem.Profile, n int) ([]Result, error) {
	if n <= 0 {
		return nil, nil
	}

	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ek, dk, err := mlkem.KeyGen(rand.Reader, profile)
			if err != nil {
				return err
			}
			id, err := uuid.NewRandom()
			if err != nil {
				return err
			}
			results[i] = Result{ID: id, Ek: ek, Dk: dk}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
