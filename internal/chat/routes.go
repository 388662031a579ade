package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes mounts the chat endpoint on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/chat", handleChat(svc))
}

type chatRequest struct {
	Message string `json:"message"`
}

func handleChat(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
			return
		}

		logrus.WithField("message", req.Message).Debug("Received chat message")

		text, err := svc.Respond(r.Context(), req.Message)
		if err != nil {
			logrus.WithError(err).Error("Chat completion failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to process chat request",
				"details": err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"response": text})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
