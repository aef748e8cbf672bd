package tts

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const builtinPresets = `
[default]
voice_id = "21m00Tcm4TlvDq8ikWAM"
stability = 0.5
similarity_boost = 0.75
style_exaggeration = 0.5

[[preset]]
name = "calm"
keywords = ["calm", "soft", "slow", "gentle", "whisper"]
voice_id = "21m00Tcm4TlvDq8ikWAM"
stability = 0.8
similarity_boost = 0.75
style_exaggeration = 0.2

[[preset]]
name = "energetic"
keywords = ["energetic", "excited", "fast", "enthusiastic", "loud"]
voice_id = "AZnzlk1XvdvUeBnXmlld"
stability = 0.3
similarity_boost = 0.8
style_exaggeration = 0.8

[[preset]]
name = "narrator"
keywords = ["narrator", "story", "deep", "serious"]
voice_id = "ErXwobaYiN019PkySvjV"
stability = 0.6
similarity_boost = 0.7
style_exaggeration = 0.4
`

type Preset struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
	Params
}

type presetFile struct {
	Default Params   `toml:"default"`
	Presets []Preset `toml:"preset"`
}

// Enricher normalizes text and picks voice parameters from free-text
// instructions. Matching is by keyword; the first preset that matches wins.
type Enricher struct {
	defaults Params
	presets  []Preset
}

// LoadEnricher reads presets from a TOML file, or the built-in table when
// path is empty.
func LoadEnricher(path string) (*Enricher, error) {
	data := []byte(builtinPresets)
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read tts presets %s: %w", path, err)
		}
		data = b
	}
	return ParseEnricher(data)
}

func ParseEnricher(data []byte) (*Enricher, error) {
	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tts presets: %w", err)
	}
	if file.Default.VoiceID == "" {
		return nil, fmt.Errorf("tts presets: default.voice_id is required")
	}
	for i := range file.Presets {
		if file.Presets[i].VoiceID == "" {
			file.Presets[i].VoiceID = file.Default.VoiceID
		}
		for j, kw := range file.Presets[i].Keywords {
			file.Presets[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return &Enricher{defaults: file.Default, presets: file.Presets}, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// Enrich returns the text to synthesize and the parameters to use.
func (e *Enricher) Enrich(text, instructions string) (string, Params) {
	enriched := strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	lowered := strings.ToLower(instructions)
	if lowered != "" {
		for _, p := range e.presets {
			for _, kw := range p.Keywords {
				if kw != "" && strings.Contains(lowered, kw) {
					return enriched, p.Params
				}
			}
		}
	}
	return enriched, e.defaults
}

func (e *Enricher) Defaults() Params {
	return e.defaults
}
