package response

import (
	"net/http"

	"github.com/go-chi/render"
)

type ErrResponse struct {
	Error string `json:"error"`
}

type OKResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Error отдает тело {"error": msg} с нужным статусом. Все ошибки API
// уходят клиенту в JSON, не плоским текстом.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrResponse{Error: msg})
}

func OK(w http.ResponseWriter, r *http.Request, msg string) {
	render.JSON(w, r, OKResponse{Success: true, Message: msg})
}
