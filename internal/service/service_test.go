package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"CryptoAdvisor/internal/auth"
	"CryptoAdvisor/internal/storage"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(context.Background(), "file:"+filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestAuthService(t *testing.T) (*AuthService, *storage.Store) {
	t.Helper()
	store := newTestStore(t)
	return NewAuthService(store, auth.NewTokenIssuer("test-secret", time.Hour)), store
}
