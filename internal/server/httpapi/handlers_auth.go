package httpapi

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// validateRegister mirrors the account field rules: name length, email
// format, and password complexity (length plus upper/lower/digit).
func validateRegister(req *registerRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if len(req.Name) < 2 || len(req.Name) > 50 {
		return "Name must be between 2 and 50 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		return "Please provide a valid email"
	}
	if len(req.Password) < 6 {
		return "Password must be at least 6 characters long"
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range req.Password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateRegister(&req); msg != "" {
		writeFail(w, http.StatusBadRequest, msg)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccessMessage(w, http.StatusCreated, "User registered successfully", map[string]any{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		writeFail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeBody(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		writeFail(w, http.StatusBadRequest, "Token is required")
		return
	}

	user, err := s.users.VerifyToken(r.Context(), req.Token)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"valid": true,
		"user":  user,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	profile, err := s.users.GetProfile(r.Context(), user.ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": profile})
}
