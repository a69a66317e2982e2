package controllers

import (
	"errors"
	"net/http"

	"github.com/ALjabriOmars/SCSP/pkg/resp"
	"github.com/ALjabriOmars/SCSP/services"
	"github.com/ALjabriOmars/SCSP/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Missing required fields")
		return
	}

	_, err := a.service.Register(req.Name, req.Email, req.Phone, req.Role, req.Password, req.Department)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "Missing required fields")
			return
		}
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, "Email already registered")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "User registered successfully")
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Unauthorized(c, "Invalid credentials")
		return
	}

	token, user, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "Invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":         user.ID,
			"full_name":  user.FullName,
			"email":      user.Email,
			"role":       user.Role,
			"department": user.Department,
		},
	})
}

// GET /api/auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.service.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
