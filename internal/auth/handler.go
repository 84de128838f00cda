package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AshwinnParthiban/server/internal/models"
	"github.com/AshwinnParthiban/server/internal/store"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users             UserStore
	secret            []byte
	defaultProfileImg string
}

func NewHandler(users UserStore, secret []byte, defaultProfileImg string) *Handler {
	return &Handler{users: users, secret: secret, defaultProfileImg: defaultProfileImg}
}

// Signup registers a new account and returns a signed access token.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := ValidateSignup(req.Fullname, req.Email, req.Password); err != nil {
		respondError(w, http.StatusForbidden, err.Error())
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("signup: hash password: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	username, err := allocateUsername(r.Context(), h.users, req.Email)
	if err != nil {
		log.Printf("signup: allocate username: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user, err := h.users.CreateUser(r.Context(), &models.User{
		Fullname:   req.Fullname,
		Email:      req.Email,
		Username:   username,
		Password:   hashed,
		ProfileImg: h.defaultProfileImg,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusInternalServerError, "Email already exists.")
			return
		}
		log.Printf("signup: create user: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.respondWithToken(w, user)
}

// Signin authenticates an existing account and returns a signed access token.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusForbidden, "Email not found.")
			return
		}
		log.Printf("signin: find user: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !CheckPassword(req.Password, user.Password) {
		respondError(w, http.StatusForbidden, "Incorrect password.")
		return
	}

	h.respondWithToken(w, user)
}

// respondWithToken signs a token for the user and writes the success
// payload shared by signup and signin.
func (h *Handler) respondWithToken(w http.ResponseWriter, user *models.User) {
	token, err := IssueToken(user.ID, h.secret)
	if err != nil {
		log.Printf("auth: sign token: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := models.AuthResponse{
		AccessToken: token,
		Username:    user.Username,
		Fullname:    user.Fullname,
	}
	if user.ProfileImg != "" {
		resp.ProfileImg = &user.ProfileImg
	}
	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
