package engine

import "github.com/google/uuid"

// TokenGenerator produces session tokens for history logs. A fresh token
// is assigned whenever a log is created, including on home-page resets,
// so every transition in transcripts and logs correlates to one session.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 session tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so tokens sort
// by session creation time, which helps when reading interleaved logs.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 as a hyphenated string.
// Panics if UUID generation fails (practically impossible).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
