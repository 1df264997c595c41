package sesion

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie holding the signed session.
const CookieName = "sesion"

var ErrSesionInvalida = errors.New("sesion invalida o expirada")

// Claims are embedded in every session token.
type Claims struct {
	UsuarioID string `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Rol       string `json:"rol"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with an HMAC secret.
type Manager struct {
	secret   []byte
	duracion time.Duration
	now      func() time.Time
}

func NewManager(secret string, duracion time.Duration) *Manager {
	return &Manager{secret: []byte(secret), duracion: duracion, now: time.Now}
}

// Duracion is the lifetime of issued sessions.
func (m *Manager) Duracion() time.Duration { return m.duracion }

// Emitir signs a session for id. The returned Claims carry the token id (jti)
// and expiry so callers can revoke it later.
func (m *Manager) Emitir(id *Identidad) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		UsuarioID: id.UsuarioID.String(),
		Nombre:    id.Nombre,
		Correo:    id.Correo,
		Rol:       id.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duracion)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Validar parses a token and returns its claims.
func (m *Manager) Validar(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrSesionInvalida
	}
	return claims, nil
}

// Identidad converts verified claims back to an identity.
func (c *Claims) Identidad() (*Identidad, error) {
	uid, err := uuid.Parse(c.UsuarioID)
	if err != nil {
		return nil, ErrSesionInvalida
	}
	return &Identidad{UsuarioID: uid, Nombre: c.Nombre, Correo: c.Correo, Rol: c.Rol}, nil
}
