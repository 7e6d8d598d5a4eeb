package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

// driveClaims is the token payload the emulator issues and accepts. Account
// identity travels inside the token so the daemon stays stateless.
type driveClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

type issueTokenRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// issueToken mints a signed bearer token for local development. The real
// cloud drive has its own OAuth flow; the emulator only needs something the
// adapter can present and the auth middleware can verify and expire.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req issueTokenRequest
	if r.Body != nil {
		// пустое тело допустимо: подставляем dev-аккаунт по умолчанию
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Name == "" {
		req.Name = "Dev User"
	}
	if req.Email == "" {
		req.Email = "dev@drive.local"
	}

	now := time.Now()
	claims := driveClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.TokenTTL)),
		},
		Name:  req.Name,
		Email: req.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		log.Err(err).Msg("error signing token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, issueTokenResponse{Token: signed})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
