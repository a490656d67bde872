package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"furnitrack/internal/auth"
	"furnitrack/internal/httpx"
)

// LoginHandler serves POST /api/login, the minimal credential check
// behind the client's session.
type LoginHandler struct {
	verifier *auth.AdminVerifier
	tokens   *auth.JWTManager
}

func NewLoginHandler(verifier *auth.AdminVerifier, tokens *auth.JWTManager) *LoginHandler {
	return &LoginHandler{verifier: verifier, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login verifies the submitted credentials and issues a session token.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.verifier.Verify(req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokens.Generate(req.Email, h.verifier.Name())
	if err != nil {
		slog.Error("Failed to issue session token", "error", err)
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Admin logged in", "email", req.Email)
	httpx.JSON(w, http.StatusOK, loginResponse{Token: token, Name: h.verifier.Name(), Email: req.Email})
}
