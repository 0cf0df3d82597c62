package handler

import (
	"net/http"
	"strings"

	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UpdateProfileReq updates the signed-in user's display name.
type UpdateProfileReq struct {
	Name string `json:"name" binding:"max=64"`
}

// ChangePasswordReq changes the signed-in user's own password.
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// UpdateProfile updates the current user's name.
func UpdateProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
			return
		}

		var req UpdateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
			return
		}

		updated, err := st.UpdateUser(user.ID, map[string]any{"name": strings.TrimSpace(req.Name)})
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update profile")
			return
		}

		util.Success(c, util.Response{
			"user": gin.H{
				"id":    updated.ID,
				"email": updated.Email,
				"name":  updated.Name,
				"role":  updated.Role,
			},
		})
	}
}

// ChangePassword verifies the old password and stores a new hash.
func ChangePassword(st *store.Store, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "wrong current password")
			return
		}

		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			bcryptCost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "password hashing failed")
			return
		}

		if _, err := st.UpdateUser(user.ID, map[string]any{"password_hash": string(hash)}); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update password")
			return
		}

		util.Success(c, util.Response{
			"message": "password changed, sign in again with the new one",
		})
	}
}
