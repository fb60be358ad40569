package testsupport

import (
	"context"
	"testing"

	"podclip/internal/config"
	"podclip/internal/episode"
	"podclip/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config, opts ...store.Option) *store.Store {
	t.Helper()

	st, err := store.Open(cfg, opts...)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedEpisode stores ep and returns the persisted copy.
func SeedEpisode(t testing.TB, st *store.Store, ep episode.Episode) episode.Episode {
	t.Helper()

	saved, err := st.PutEpisode(context.Background(), ep)
	if err != nil {
		t.Fatalf("store.PutEpisode: %v", err)
	}
	return saved
}
