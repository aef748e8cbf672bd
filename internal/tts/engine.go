// Package tts turns post text into speech audio.
package tts

import (
	"context"
	"errors"
)

var (
	ErrTextEmpty  = errors.New("text cannot be empty")
	ErrEmptyAudio = errors.New("received empty audio data")
)

// Params are the voice settings sent with a generation request.
type Params struct {
	VoiceID           string  `toml:"voice_id" json:"voiceId"`
	Stability         float64 `toml:"stability" json:"stability"`
	SimilarityBoost   float64 `toml:"similarity_boost" json:"similarity_boost"`
	StyleExaggeration float64 `toml:"style_exaggeration" json:"style_exaggeration"`
}

// Engine produces MPEG audio for already enriched text.
type Engine interface {
	Synthesize(ctx context.Context, text string, params Params) ([]byte, error)
}
