package tts

import (
	"context"
	"strings"
)

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, no padding: 417 bytes per frame.
var silentFrameHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

const silentFrameSize = 417

// StubEngine returns silent MP3 audio whose length grows with the text.
// It is used when no TTS API key is configured.
type StubEngine struct{}

func (StubEngine) Synthesize(ctx context.Context, text string, _ Params) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextEmpty
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Roughly one frame (26ms) per character, at least one second of audio.
	frames := len(text)
	if frames < 38 {
		frames = 38
	}

	audio := make([]byte, 0, frames*silentFrameSize)
	for i := 0; i < frames; i++ {
		frame := make([]byte, silentFrameSize)
		copy(frame, silentFrameHeader)
		audio = append(audio, frame...)
	}
	return audio, nil
}
