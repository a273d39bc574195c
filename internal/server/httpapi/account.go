package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/dmitrijs2005/shouxkream/internal/server/services"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"max=100"`
	Nickname string `json:"nickname" validate:"max=50"`
}

// loginRequest carries no validation tags: any mismatch, including empty
// fields, is reported as invalid credentials.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type updateProfileRequest struct {
	Password    string `json:"password" validate:"max=72"`
	NewPassword string `json:"newPassword" validate:"omitempty,max=72"`
	Email       string `json:"email" validate:"omitempty,email,max=254"`
	Name        string `json:"name" validate:"max=100"`
	Nickname    string `json:"nickname" validate:"max=50"`
}

type tokenResponse struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Nickname:  u.Nickname,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTokenResponse(t *services.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:      t.AccessToken,
		RefreshToken:     t.RefreshToken,
		AccessExpiresAt:  t.AccessExpiresAt,
		RefreshExpiresAt: t.RefreshExpiresAt,
	}
}

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	id, err := h.Users.Signup(r.Context(), services.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	tokens, err := h.Users.Login(r.Context(), services.LoginRequest{Email: req.Email, Password: req.Password})
	h.Metrics.AuthEvent("login", err)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTokenResponse(tokens))
}

func (h *handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	tokens, err := h.Users.Refresh(r.Context(), req.RefreshToken)
	h.Metrics.AuthEvent("refresh", err)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTokenResponse(tokens))
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	err := h.Users.Logout(r.Context(), p)
	h.Metrics.AuthEvent("logout", err)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	u, err := h.Users.GetCurrentUser(r.Context(), p)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}

	p, _ := auth.PrincipalFromContext(r.Context())
	u, err := h.Users.UpdateProfile(r.Context(), p, services.UpdateProfileRequest{
		Password:    req.Password,
		NewPassword: req.NewPassword,
		Email:       req.Email,
		Name:        req.Name,
		Nickname:    req.Nickname,
	})
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	if err := h.Users.DeleteUser(r.Context(), p); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addresses(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	list, err := h.Users.GetUserAddresses(r.Context(), p.Email)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if h.Health != nil {
		if err := h.Health.PingContext(r.Context()); err != nil {
			h.logger.Warn(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
