package transcribe

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes mounts the speech-to-text endpoint on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/speech-to-text", handleSpeechToText(svc))
}

type speechToTextRequest struct {
	AudioData string `json:"audioData"`
}

func handleSpeechToText(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req speechToTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AudioData == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Audio data is required"})
			return
		}

		transcription, err := svc.Transcribe(req.AudioData)
		if err != nil {
			logrus.WithError(err).Error("Speech-to-text processing failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to process speech-to-text",
				"details": friendlyMessage(err.Error()),
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"transcription": transcription})
	}
}

// friendlyMessage rewrites common network failure text into guidance the
// client can show the user. Anything unrecognized passes through raw.
func friendlyMessage(msg string) string {
	switch {
	case strings.Contains(msg, "connection reset") || strings.Contains(msg, "connection error"):
		return "Network connection failed. Please check your internet connection and firewall settings."
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "The request timed out. Try a shorter audio recording or check your network speed."
	default:
		return msg
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
