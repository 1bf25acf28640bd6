package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName es el nombre de la cookie de sesión de la tienda.
const SessionName = "jlv_session"

const (
	adminKey  = "is_admin"
	cartIDKey = "cart_id"
)

// IsAdmin lee la bandera de sesión de administración.
func IsAdmin(store sessions.Store, r *http.Request) bool {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}
	isAdmin, ok := sess.Values[adminKey].(bool)
	return ok && isAdmin
}

// SetAdmin fija la bandera de sesión. La bandera vive sólo en la cookie
// de esta sesión de navegador; no se persiste en el servidor.
func SetAdmin(store sessions.Store, c *gin.Context, isAdmin bool) error {
	sess, _ := store.Get(c.Request, SessionName)
	sess.Values[adminKey] = isAdmin
	return sess.Save(c.Request, c.Writer)
}

// CartID devuelve el id de carrito de la sesión, asignando uno nuevo la
// primera vez que la sesión toca el carrito.
func CartID(store sessions.Store, c *gin.Context) (string, error) {
	sess, _ := store.Get(c.Request, SessionName)
	if id, ok := sess.Values[cartIDKey].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	sess.Values[cartIDKey] = id
	if err := sess.Save(c.Request, c.Writer); err != nil {
		return "", err
	}
	return id, nil
}

// RequireAdmin corta con 401 cualquier ruta de administración cuando la
// bandera de sesión no está puesta. Es la versión API de la redirección
// a la pantalla de PIN.
func RequireAdmin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(store, c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
			return
		}
		c.Next()
	}
}
