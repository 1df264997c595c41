package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/apierror"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// ventana counts requests per IP in fixed windows.
type ventana struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu          sync.Mutex
	entries     map[string]*ventanaEntry
	nextPurgeAt time.Time
}

type ventanaEntry struct {
	count     int
	windowEnd time.Time
}

func newVentana(limit int, window time.Duration) *ventana {
	return &ventana{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*ventanaEntry),
	}
}

// permitir records one request from ip and reports whether it is within the
// limit, together with the end of the current window.
func (v *ventana) permitir(ip string) (bool, time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.After(v.nextPurgeAt) {
		v.purgar(now)
		v.nextPurgeAt = now.Add(purgeInterval)
	}

	entry, ok := v.entries[ip]
	if !ok {
		entry = &ventanaEntry{}
		v.entries[ip] = entry
	}
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(v.window)
	}
	entry.count++
	return entry.count <= v.limit, entry.windowEnd
}

// purgar drops expired entries so IPs that never return don't accumulate.
func (v *ventana) purgar(now time.Time) {
	purged := 0
	for ip, entry := range v.entries {
		if now.After(entry.windowEnd) {
			delete(v.entries, ip)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", len(v.entries)).
			Msg("rate limiter purged")
	}
}

const MensajeDemasiadosIntentos = "Demasiados intentos de inicio de sesión. Intenta de nuevo en un minuto."

// LoginRateLimiter limits login attempts to 20 per minute per IP. Rejected
// attempts go back to the login form with a flash message.
func LoginRateLimiter() gin.HandlerFunc {
	v := newVentana(20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := v.permitir(c.ClientIP()); !ok {
			web.Flashear(c, web.FlashError, MensajeDemasiadosIntentos)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose per-IP limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	v := newVentana(limit, window)
	return func(c *gin.Context) {
		ok, windowEnd := v.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
