package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler is the admin-only user management surface.
type UserHandler struct {
	Store      *store.Store
	BcryptCost int
}

func NewUserHandler(st *store.Store, bcryptCost int) *UserHandler {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserHandler{Store: st, BcryptCost: bcryptCost}
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

// List returns every account.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Store.ListUsers()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user query failed")
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, userView(&users[i]))
	}

	util.Success(c, util.Response{"items": items})
}

type createUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"max=64"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Role     string `json:"role"`
}

// Create registers a new account. Role defaults to plain user; only
// "admin" is accepted as an alternative.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	role := models.RoleUser
	if req.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "password hashing failed")
		return
	}

	user := models.User{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "email already registered")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create user")
		}
		return
	}

	util.Success(c, util.Response{"user": userView(&user)})
}

type changeRoleReq struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}

// ChangeRole switches an account between admin and plain user. The
// last administrator cannot be demoted.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req changeRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	target, err := h.Store.GetUser(uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user query failed")
		}
		return
	}

	if target.IsAdmin() && req.Role == models.RoleUser {
		admins, err := h.Store.CountAdmins()
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user query failed")
			return
		}
		if admins <= 1 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot demote the last administrator")
			return
		}
	}

	updated, err := h.Store.UpdateUser(uint(id), map[string]any{"role": req.Role})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update user")
		return
	}

	util.Success(c, util.Response{"user": userView(updated)})
}

type resetPasswordReq struct {
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// ResetPassword sets a new password for an account.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "password hashing failed")
		return
	}

	if _, err := h.Store.UpdateUser(uint(id), map[string]any{"password_hash": string(hash)}); err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update user")
		}
		return
	}

	util.Success(c, util.Response{"message": "password updated"})
}

// Delete removes an account. Admins cannot delete themselves, and the
// last administrator cannot be removed.
func (h *UserHandler) Delete(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if uint(id) == current.ID {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot delete your own account")
		return
	}

	target, err := h.Store.GetUser(uint(id))
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user query failed")
		}
		return
	}

	if target.IsAdmin() {
		admins, err := h.Store.CountAdmins()
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user query failed")
			return
		}
		if admins <= 1 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot delete the last administrator")
			return
		}
	}

	deleted, err := h.Store.DeleteUser(uint(id))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete user")
		return
	}

	util.Success(c, util.Response{"deleted": deleted})
}
