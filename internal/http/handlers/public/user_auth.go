package public

import (
	"net/http"

	"github.com/uniquemj/ecommerce-api/internal/constants"
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterCustomer signs a customer up.
func (h *Handler) RegisterCustomer(c *gin.Context) {
	h.register(c, constants.RoleCustomer)
}

// RegisterSeller signs a seller up; the account stays unverified until an
// admin approves it.
func (h *Handler) RegisterSeller(c *gin.Context) {
	h.register(c, constants.RoleSeller)
}

func (h *Handler) register(c *gin.Context, role string) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	user, err := h.AuthService.Register(req, role)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "Registration failed.")
		return
	}
	response.Created(c, "Registered successfully.", user)
}

// Login checks credentials and sets the token cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	user, token, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "Login failed.")
		return
	}

	expireHours := h.Config.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.UserTokenCookie, token, expireHours*3600, "/", "", true, true)

	response.Success(c, "Logged in successfully.", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout clears the token cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.UserTokenCookie, "", -1, "/", "", true, true)
	response.Success(c, "Logged out successfully.", nil)
}

// Profile returns the authenticated user's profile.
func (h *Handler) Profile(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(uid)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "Profile fetch failed.")
		return
	}
	response.Success(c, "Profile fetched successfully.", user)
}

// UpdateProfile edits the authenticated user's profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req service.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	user, err := h.UserService.UpdateProfile(uid, req)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "Profile update failed.")
		return
	}
	response.Success(c, "Profile updated successfully.", user)
}
