package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/enthugo/portfolio-site-backend/config"
	"github.com/enthugo/portfolio-site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	app       config.App
}

func newAuthHandler(app config.App) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		app:       app,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// login exchanges the admin password for a signed bearer token carrying the
// admin role.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.app.AdminPasswordHash == "" || h.app.JWTSecret == "" {
			h.responder.WriteError(w, errs.NewInternalError("admin authentication is not configured"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.app.AdminPasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		expiresAt := time.Now().Add(h.app.TokenTTL)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "admin",
			"exp":  expiresAt.Unix(),
			"iat":  time.Now().Unix(),
		})

		signed, err := token.SignedString([]byte(h.app.JWTSecret))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: signed, ExpiresAt: expiresAt})
	}
}
