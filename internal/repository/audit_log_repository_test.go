package repository

import (
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAuditLogListFilters(t *testing.T) {
	db := newRepoTestDB(t, "audit_filters")
	repo := NewAuditLogRepository(db)

	entries := []models.AuditLog{
		{ActorID: 1, ActorRole: "customer", Method: "POST", Path: "/api/v1/orders", StatusCode: 201},
		{ActorID: 1, ActorRole: "customer", Method: "PUT", Path: "/api/v1/orders/cancel/3", StatusCode: 200},
		{ActorID: 2, ActorRole: "seller", Method: "PUT", Path: "/api/v1/orders/seller/status/5", StatusCode: 200},
	}
	for i := range entries {
		require.NoError(t, repo.Create(&entries[i]))
	}

	got, total, err := repo.List(AuditLogListFilter{Page: 1, Limit: 10, ActorID: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, got, 2)

	got, total, err = repo.List(AuditLogListFilter{Page: 1, Limit: 10, Method: "put"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total, "method filter is case insensitive")

	got, total, err = repo.List(AuditLogListFilter{Page: 1, Limit: 10, Path: "/api/v1/orders/cancel"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "/api/v1/orders/cancel/3", got[0].Path)
}

func TestAuditLogListNewestFirst(t *testing.T) {
	db := newRepoTestDB(t, "audit_order")
	repo := NewAuditLogRepository(db)

	first := models.AuditLog{Method: "POST", Path: "/api/v1/orders"}
	second := models.AuditLog{Method: "POST", Path: "/api/v1/cart/items"}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	got, _, err := repo.List(AuditLogListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
}
