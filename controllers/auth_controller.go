package controllers

import (
	"errors"
	"net/http"

	"github.com/Manish9250/calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.auth.Login(input.Username, input.Password)
	if errors.Is(err, services.ErrIncorrectPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Login successful."
	if result.Created {
		message = "User created."
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, "token": result.Token})
}
