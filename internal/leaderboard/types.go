// Package leaderboard implements the shared score service: an HTTP API the
// arcade posts finished runs to, plus the client games use to read the top
// table. Scores are keyed by game ID and carry the player's display name.
package leaderboard

import (
	"fmt"
	"regexp"
	"time"
)

// Top-10 is the only read shape the service offers.
const TopLimit = 10

// Name rules are enforced on the client before a submission leaves the
// machine, and again on the server.
const (
	NameMinLen = 2
	NameMaxLen = 16
)

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// Entry is one leaderboard row.
type Entry struct {
	Rank      int       `json:"rank"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Submission is a finished run posted to the service. SubmissionID is a
// client-generated UUID; resubmitting the same ID is a no-op, which makes
// retries after a dropped response safe.
type Submission struct {
	SubmissionID string `json:"submission_id"`
	Game         string `json:"game"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
}

// TopResponse is the read payload.
type TopResponse struct {
	Game    string  `json:"game"`
	Entries []Entry `json:"entries"`
}

// SubmitResponse acknowledges a submission with its resulting rank, or 0
// when the run did not make the table.
type SubmitResponse struct {
	Accepted bool `json:"accepted"`
	Rank     int  `json:"rank"`
}

// errorPayload is the JSON error envelope all non-2xx responses use.
type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError carries the server's error text verbatim so the player sees the
// same message the operator logged.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("leaderboard: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("leaderboard: %s (http %d)", e.Message, e.Status)
}

// ValidateName checks a display name against the service rules: 2 to 16
// characters, letters, digits, and spaces only.
func ValidateName(name string) error {
	if len(name) < NameMinLen {
		return fmt.Errorf("name must be at least %d characters", NameMinLen)
	}
	if len(name) > NameMaxLen {
		return fmt.Errorf("name must be at most %d characters", NameMaxLen)
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name may only contain letters, digits, and spaces")
	}
	return nil
}
