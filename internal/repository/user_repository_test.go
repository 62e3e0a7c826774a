package repository

import (
	"testing"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := []models.User{
		{Email: "admin@example.com", PasswordHash: "x", Role: constants.RoleAdmin, IsVerified: true},
		{Email: "seller@example.com", PasswordHash: "x", Role: constants.RoleSeller, StoreName: "Acme Outfitters"},
		{Email: "buyer@example.com", PasswordHash: "x", FullName: "Regular Buyer", Role: constants.RoleCustomer, IsVerified: true},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
}

func TestUserListFilterByRole(t *testing.T) {
	db := newRepoTestDB(t, "user_role_filter")
	repo := NewUserRepository(db)
	seedUsers(t, db)

	users, total, err := repo.List(UserListFilter{Page: 1, Limit: 10, Role: constants.RoleSeller})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, users, 1)
	require.Equal(t, "seller@example.com", users[0].Email)
}

func TestUserListFilterByKeyword(t *testing.T) {
	db := newRepoTestDB(t, "user_keyword_filter")
	repo := NewUserRepository(db)
	seedUsers(t, db)

	users, total, err := repo.List(UserListFilter{Page: 1, Limit: 10, Keyword: "Acme"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Acme Outfitters", users[0].StoreName)

	users, total, err = repo.List(UserListFilter{Page: 1, Limit: 10, Keyword: "Regular"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "buyer@example.com", users[0].Email)
}

func TestGetByEmailMissingUserIsNil(t *testing.T) {
	db := newRepoTestDB(t, "user_missing")
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
