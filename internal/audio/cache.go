// Package audio is the content-addressed store of generated speech.
package audio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"vocal-feed/internal/tts"
	"vocal-feed/pkg/blob"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

const (
	ContentType   = "audio/mpeg"
	fileExtension = ".mp3"
)

var ErrArtifactNotFound = errors.New("audio artifact not found")

var fingerprintPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Fingerprint identifies the artifact for a (text, instructions) pair. The
// NUL separator keeps ("ab", "c") and ("a", "bc") apart.
func Fingerprint(text, instructions string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(instructions))
	return hex.EncodeToString(h.Sum(nil))
}

func ValidFingerprint(fp string) bool {
	return fingerprintPattern.MatchString(fp)
}

func blobKey(fp string) string {
	return fp + fileExtension
}

type Result struct {
	URL         string `json:"audioUrl"`
	Fingerprint string `json:"fingerprint"`
	Created     bool   `json:"created"`
}

// Cache generates each artifact at most once per process. Across processes
// two instances may both generate the same fingerprint; the blob write is
// whole-object so the stored bytes stay consistent.
type Cache struct {
	store    blob.Store
	engine   tts.Engine
	enricher *tts.Enricher
	urlBase  string
	metrics  metrics.AudioRecorder
	logger   *logger.Logger
	group    singleflight.Group
}

func NewCache(store blob.Store, engine tts.Engine, enricher *tts.Enricher, urlBase string, recorder metrics.AudioRecorder, log *logger.Logger) *Cache {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Cache{
		store:    store,
		engine:   engine,
		enricher: enricher,
		urlBase:  strings.TrimRight(urlBase, "/"),
		metrics:  recorder,
		logger:   log,
	}
}

// URLFor is the public location an artifact is served from.
func (c *Cache) URLFor(fp string) string {
	return c.urlBase + "/" + fp
}

type generation struct {
	created bool
}

func (c *Cache) GetOrCreate(ctx context.Context, text, instructions string) (Result, error) {
	fp := Fingerprint(text, instructions)
	result := Result{URL: c.URLFor(fp), Fingerprint: fp}

	exists, err := c.store.Exists(ctx, blobKey(fp))
	if err != nil {
		return Result{}, fmt.Errorf("failed to check audio artifact %s: %w", fp, err)
	}
	if exists {
		c.metrics.RecordCacheHit()
		return result, nil
	}

	led := false
	ch := c.group.DoChan(fp, func() (interface{}, error) {
		led = true
		// Generation outlives a cancelled caller so waiters sharing it still
		// get a result; the engine's own timeout bounds it.
		return c.generate(context.WithoutCancel(ctx), fp, text, instructions)
	})

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Result{}, res.Err
		}
		result.Created = led && res.Val.(generation).created
		return result, nil
	}
}

func (c *Cache) generate(ctx context.Context, fp, text, instructions string) (generation, error) {
	key := blobKey(fp)

	// Another caller may have finished between our check and joining the group.
	exists, err := c.store.Exists(ctx, key)
	if err != nil {
		return generation{}, fmt.Errorf("failed to check audio artifact %s: %w", fp, err)
	}
	if exists {
		c.metrics.RecordCacheHit()
		return generation{}, nil
	}

	c.metrics.RecordCacheMiss()
	start := time.Now()

	enriched, params := c.enricher.Enrich(text, instructions)
	audio, err := c.engine.Synthesize(ctx, enriched, params)
	if err != nil {
		c.metrics.RecordGenerationFailure("engine")
		return generation{}, fmt.Errorf("failed to generate audio %s: %w", fp, err)
	}

	if err := c.store.Put(ctx, key, audio, ContentType); err != nil {
		c.metrics.RecordGenerationFailure("store")
		return generation{}, fmt.Errorf("failed to store audio %s: %w", fp, err)
	}

	elapsed := time.Since(start)
	c.metrics.RecordGenerationLatency(elapsed)
	if c.logger != nil {
		c.logger.Info("Generated audio %s (%d bytes) in %s", fp, len(audio), elapsed)
	}
	return generation{created: true}, nil
}

// Fetch opens a stored artifact. Unknown and malformed fingerprints yield
// ErrArtifactNotFound; storage failures are returned wrapped.
func (c *Cache) Fetch(ctx context.Context, fp string) (io.ReadCloser, error) {
	if !ValidFingerprint(fp) {
		return nil, ErrArtifactNotFound
	}
	rc, err := c.store.Open(ctx, blobKey(fp))
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to open audio artifact %s: %w", fp, err)
	}
	return rc, nil
}
