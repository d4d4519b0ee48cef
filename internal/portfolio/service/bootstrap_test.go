package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBootstrapProvisionsAdminAndSeeds(t *testing.T) {
	st := newTestStore(t)
	boot := &BootstrapService{
		Store:         st,
		Logger:        slog.Default(),
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
	}
	ctx := context.Background()

	require.NoError(t, boot.Run(ctx))

	auth := &AuthService{Store: st}
	_, err := auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)

	experiences, err := st.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 5)
	require.Equal(t, "Erste Banka Srbija", experiences[0].Company)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	boot := &BootstrapService{
		Store:         st,
		Logger:        slog.Default(),
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
	}
	ctx := context.Background()

	require.NoError(t, boot.Run(ctx))
	require.NoError(t, boot.Run(ctx))

	experiences, err := st.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 5)
}

func TestBootstrapWithoutAdminConfigSkipsCredential(t *testing.T) {
	st := newTestStore(t)
	boot := &BootstrapService{Store: st, Logger: slog.Default()}
	ctx := context.Background()

	require.NoError(t, boot.Run(ctx))

	empty, err := st.Credentials().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	// Experiences still get seeded.
	experiences, err := st.Experiences().ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 5)
}
