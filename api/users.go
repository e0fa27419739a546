package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
	"github.com/nshubina/airport-api/internal/service/users"
)

type UserHandler struct {
	service users.UseCase
}

func NewUserHandler(service users.UseCase) *UserHandler {
	return &UserHandler{service: service}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=64"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=8,max=64"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func (h *UserHandler) Register(router *gin.RouterGroup, mw *AuthMiddleware) {
	router.POST("", h.register)
	router.GET("", mw.RequireStaff(), h.list)
	router.GET("/me", mw.RequireAuth(), h.me)
	router.PUT("/me", mw.RequireAuth(), h.updateMe)
}

// register is open to anonymous callers and to staff; an already
// authenticated regular user may not create more accounts.
func (h *UserHandler) register(c *gin.Context) {
	if claims, ok := callerClaims(c); ok && !claims.IsStaff {
		c.JSON(http.StatusForbidden, gin.H{"error": "already registered"})
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), users.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) list(c *gin.Context) {
	usersList, err := h.service.List(c.Request.Context(), parseListParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := make([]userResponse, 0, len(usersList))
	for i := range usersList {
		resp = append(resp, toUserResponse(&usersList[i]))
	}
	c.JSON(http.StatusOK, gin.H{"results": resp})
}

func (h *UserHandler) me(c *gin.Context) {
	claims, _ := callerClaims(c)
	user, err := h.service.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) updateMe(c *gin.Context) {
	claims, _ := callerClaims(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	user, err := h.service.UpdateMe(c.Request.Context(), claims.UserID, users.UpdateInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// token exchanges credentials for a bearer token.
func (h *UserHandler) token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": token})
}
