package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type visitor struct {
	count     int
	lastReset time.Time
}

// RateLimiter es un limitador de ventana fija por IP para la ruta de
// login. Vive en memoria del proceso: no es durable ni se comparte entre
// instancias, suficiente sólo para un despliegue de proceso único.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow registra un intento de la IP y dice si pasa. El contador se
// reinicia cuando la ventana expira desde el último reinicio.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{lastReset: now}
		rl.visitors[ip] = v
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 0
		v.lastReset = now
	}

	if v.count >= rl.limit {
		return false
	}
	v.count++
	return true
}

// Middleware rechaza con 429 los intentos que exceden el límite.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
