package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"menedzer-dysku/internal/auth"
	"menedzer-dysku/internal/database"
	"menedzer-dysku/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("ERROR: Failed to hash password: %v", err)
		respondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	// The pre-check gives a friendly message; the unique constraints on
	// users(email) and users(username) decide races between two registrations.
	var user *models.User
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		existing, err := q.GetUserByEmailOrUsername(r.Context(), req.Email, req.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return database.ErrUserAlreadyExists
		}

		user, err = q.CreateUser(r.Context(), database.CreateUserParams{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hashedPassword,
		})
		return err
	})

	if txErr != nil {
		if errors.Is(txErr, database.ErrUserAlreadyExists) {
			respondError(w, http.StatusConflict, "User already exists")
			return
		}
		log.Printf("ERROR: Failed to register user: %v", txErr)
		respondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	token, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		log.Printf("ERROR: Failed to generate token for user %d: %v", user.ID, err)
		respondError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    newUserResponse(user),
	})
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("ERROR: Failed to look up user: %v", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		respondError(w, http.StatusBadRequest, "Invalid login credentials")
		return
	}

	token, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		log.Printf("ERROR: Failed to generate token for user %d: %v", user.ID, err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    newUserResponse(user),
	})
}

func (s *Server) GetCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	user, err := s.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve user data")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    newUserResponse(user),
	})
}
