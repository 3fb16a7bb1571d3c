package tts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaySpeakPassesVoice(t *testing.T) {
	var gotName string
	var gotArgs []string
	stubExec(t,
		func(string) (string, error) { return "/usr/bin/say", nil },
		func(_ context.Context, name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		})

	require.NoError(t, NewSay("Samantha").Speak(context.Background(), "done"))
	assert.Equal(t, "say", gotName)
	assert.Equal(t, []string{"-v", "Samantha", "done"}, gotArgs)
}

func TestESpeakPrefersNGBinary(t *testing.T) {
	var gotName string
	stubExec(t,
		func(bin string) (string, error) {
			if bin == "espeak-ng" {
				return "/usr/bin/espeak-ng", nil
			}
			return "", errors.New("not found")
		},
		func(_ context.Context, name string, _ ...string) error {
			gotName = name
			return nil
		})

	require.NoError(t, NewESpeak().Speak(context.Background(), "done"))
	assert.Equal(t, "espeak-ng", gotName)
}

func TestESpeakWrapsCommandFailure(t *testing.T) {
	stubExec(t,
		func(string) (string, error) { return "/usr/bin/espeak", nil },
		func(context.Context, string, ...string) error {
			return errors.New("exit status 1")
		})

	err := NewESpeak().Speak(context.Background(), "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestPSQuote(t *testing.T) {
	assert.Equal(t, `'hello'`, psQuote("hello"))
	assert.Equal(t, `'it''s done'`, psQuote("it's done"))
}
