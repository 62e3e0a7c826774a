package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/uniquemj/ecommerce-api/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState is a server-side snapshot of the fields the auth middleware
// needs on every request, so role changes and seller verification take
// effect without re-issuing tokens.
type UserAuthState struct {
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	UpdatedAt  int64  `json:"updated_at"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

// BuildUserAuthState builds a snapshot from the user model.
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:     user.ID,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		UpdatedAt:  time.Now().Unix(),
	}
}

// GetUserAuthState reads the cached snapshot; the bool reports a hit.
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	return &state, true, nil
}

// SetUserAuthState caches a snapshot.
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// InvalidateUserAuthState drops the snapshot, forcing a database re-read.
func InvalidateUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Delete(ctx, userAuthStateKey(userID))
}
