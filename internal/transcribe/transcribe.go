// Package transcribe provides the mock speech-to-text service. OpenRouter
// does not offer transcription, so the service decodes the uploaded audio,
// round-trips it through a scratch file to keep the I/O shape of a real
// pipeline, and answers with a canned interview question.
package transcribe

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phrases is the fixed set of canned transcriptions. One is chosen
// uniformly at random per call.
var Phrases = []string{
	"Tell me about your experience with deep learning.",
	"What projects have you worked on involving AI?",
	"How do you approach problem-solving in machine learning?",
	"What are your strengths and weaknesses?",
	"Why do you want to join our company?",
}

// Service decodes audio payloads and returns mock transcriptions. pick
// selects an index in [0, n); it is injectable so tests can pin the choice.
type Service struct {
	dir  string
	pick func(n int) int
}

// New creates a transcription service writing scratch files under dir,
// creating it if absent.
func New(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir %s: %w", dir, err)
	}
	return &Service{dir: dir, pick: rand.IntN}, nil
}

// Transcribe accepts a base64 data URL ("<header>,<payload>"), writes the
// decoded bytes to a uniquely named scratch file, deletes it, and returns a
// random canned phrase. The scratch file never survives the call; a failed
// deletion is logged and does not fail the transcription.
func (s *Service) Transcribe(dataURL string) (string, error) {
	_, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return "", fmt.Errorf("invalid audio data: missing base64 payload")
	}

	buf, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decoding audio data: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("audio-%s.webm", uuid.NewString()))
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		// A partial file may exist; best effort cleanup before failing.
		os.Remove(path)
		return "", fmt.Errorf("writing audio file: %w", err)
	}

	if err := os.Remove(path); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("Failed to delete temporary audio file")
	}

	transcription := Phrases[s.pick(len(Phrases))]
	logrus.WithField("transcription", transcription).Debug("Mock transcription created")
	return transcription, nil
}
