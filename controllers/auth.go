package controllers

import (
	"net/http"

	"localpro-backend/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

type AuthController struct {
	Verifier       utils.CredentialVerifier
	JWTSecret      string
	JWTExpiryHours int
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the admin credentials and issues a bearer token valid for
// one day.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !a.Verifier.Verify(input.Email, input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(input.Email, a.JWTSecret, a.JWTExpiryHours)
	if err != nil {
		zlog.Error().Err(err).Msg("generate token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
