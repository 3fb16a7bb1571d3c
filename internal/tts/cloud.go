package tts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	cloudRequestTimeout = 30 * time.Second

	// maxSynthRetries bounds transient-error retries of a synthesis request.
	// Quota and auth failures are permanent and skip retrying entirely.
	maxSynthRetries = 2
)

var httpClient = &http.Client{Timeout: cloudRequestTimeout}

// postSynthesis sends a JSON synthesis request and returns the raw audio
// bytes. Transient failures (network, 5xx, 429 rate limiting) are retried a
// bounded number of times; quota/auth rejections map to ErrQuotaExceeded so
// the caller can fall back to a native backend.
func postSynthesis(ctx context.Context, url string, headers map[string]string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var audio []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			audio, err = io.ReadAll(resp.Body)
			return err
		case resp.StatusCode == http.StatusUnauthorized,
			resp.StatusCode == http.StatusPaymentRequired,
			resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(fmt.Errorf("%s: %w", resp.Status, ErrQuotaExceeded))
		case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
			return fmt.Errorf("synthesis request failed: %s", resp.Status)
		default:
			return backoff.Permanent(fmt.Errorf("synthesis request failed: %s", resp.Status))
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSynthRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return audio, nil
}

// speakAudio writes synthesized audio to a temp file and plays it.
func speakAudio(ctx context.Context, name string, audio []byte) error {
	tmp, err := os.CreateTemp("", "herald-"+name+"-*.mp3")
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return playFile(ctx, path)
}

// speakWithFallback runs a cloud synthesis and degrades to the native
// backend within the same call when the cloud side reports quota
// exhaustion. Any other failure propagates to the caller.
func speakWithFallback(ctx context.Context, name string, fallback Backend, text string, synth func(context.Context) ([]byte, error)) error {
	audio, err := synth(ctx)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) && fallback != nil && fallback.Available() {
			log.Warn().
				Str("backend", name).
				Str("fallback", fallback.Name()).
				Msg("quota exhausted, falling back to native backend")
			return fallback.Speak(ctx, text)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return speakAudio(ctx, name, audio)
}
