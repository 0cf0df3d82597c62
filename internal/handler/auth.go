package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/logger"
	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves sign-in. Accounts are created by administrators
// on the users endpoints; there is no public registration.
type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAuthHandler(st *store.Store, jwtSecret, issuer string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Store:     st,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials against the users collection and returns a
// signed token plus the user's public fields.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong email or password")
		} else {
			logger.S.Errorw("login lookup failed", "err", err)
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user lookup failed")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "wrong email or password")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, user.ID, h.TokenTTL)
	if err != nil {
		logger.S.Errorw("token generation failed", "err", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create session")
		return
	}

	logger.S.Infow("user signed in", "user_id", user.ID, "ip", c.ClientIP())

	util.Success(c, util.Response{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// GetMe returns the signed-in user's public fields.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		},
	})
}
