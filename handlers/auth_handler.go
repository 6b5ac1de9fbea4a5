package handlers

import (
	"errors"
	"net/http"

	"github.com/7kevin24/ZJU-SFL/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// @Summary Вход администратора лиги
// @Tags auth
// @Accept json
// @Produce json
// @Param input body object{password=string} true "Пароль администратора"
// @Success 200 {object} object{token=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	token, err := h.authService.Login(input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"token": token}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
