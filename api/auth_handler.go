package api

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/server"
	"github.com/kbukum/inventario/validation"
)

// handleRegister creates a user account and answers 201 with its id and
// username, or 400 when the username is taken or invalid.
func (a *API) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	user, err := a.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondCreated(c, registerResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// handleLogin exchanges credentials for a signed bearer token. Every
// failure mode answers the same 400 body.
func (a *API) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.InvalidCredentials())
		return
	}

	token, err := a.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, loginResponse{Token: token})
}
