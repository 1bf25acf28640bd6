package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/NigthMare10/jlv-disenos/internal/middleware"
	"github.com/NigthMare10/jlv-disenos/internal/security"
)

type AuthHandler struct {
	sessions sessions.Store
	pinHash  string
}

func NewAuthHandler(sessionStore sessions.Store, pinHash string) *AuthHandler {
	return &AuthHandler{
		sessions: sessionStore,
		pinHash:  pinHash,
	}
}

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// Login verifica el PIN y marca la sesión como administradora. Un PIN
// incorrecto deja la sesión como estaba.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !security.VerifyPIN(req.PIN, h.pinHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "PIN incorrecto"})
		return
	}

	if err := middleware.SetAdmin(h.sessions, c, true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "welcome"})
}

// Logout apaga la bandera de administración de la sesión.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.SetAdmin(h.sessions, c, false); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
