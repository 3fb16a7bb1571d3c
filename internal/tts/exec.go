package tts

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// Indirections over os/exec so tests can fake command discovery and runs.
var (
	lookPath = exec.LookPath
	runCmd   = func(ctx context.Context, name string, args ...string) error {
		return exec.CommandContext(ctx, name, args...).Run()
	}
)

// Say speaks through the macOS `say` command.
type Say struct {
	voice string
}

// NewSay creates the macOS native backend.
func NewSay(voice string) *Say {
	return &Say{voice: voice}
}

func (s *Say) Name() string { return "say" }

func (s *Say) Available() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := lookPath("say")
	return err == nil
}

func (s *Say) Speak(ctx context.Context, text string) error {
	var args []string
	if s.voice != "" {
		args = append(args, "-v", s.voice)
	}
	args = append(args, text)
	if err := runCmd(ctx, "say", args...); err != nil {
		return fmt.Errorf("say: %w", err)
	}
	return nil
}

// ESpeak speaks through espeak-ng, falling back to classic espeak.
type ESpeak struct {
	amplitude int
}

// NewESpeak creates the Linux native backend.
func NewESpeak() *ESpeak {
	return &ESpeak{amplitude: 150}
}

func (e *ESpeak) Name() string { return "espeak" }

func (e *ESpeak) Available() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	return e.binary() != ""
}

func (e *ESpeak) Speak(ctx context.Context, text string) error {
	bin := e.binary()
	if bin == "" {
		return fmt.Errorf("espeak: no espeak-ng or espeak binary found")
	}
	if err := runCmd(ctx, bin, "--amplitude", strconv.Itoa(e.amplitude), text); err != nil {
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}

func (e *ESpeak) binary() string {
	for _, bin := range []string{"espeak-ng", "espeak"} {
		if _, err := lookPath(bin); err == nil {
			return bin
		}
	}
	return ""
}

// PowerShell speaks through the Windows SAPI synthesizer.
type PowerShell struct{}

// NewPowerShell creates the Windows native backend.
func NewPowerShell() *PowerShell {
	return &PowerShell{}
}

func (p *PowerShell) Name() string { return "powershell" }

func (p *PowerShell) Available() bool {
	if runtime.GOOS != "windows" {
		return false
	}
	_, err := lookPath("powershell")
	return err == nil
}

func (p *PowerShell) Speak(ctx context.Context, text string) error {
	script := fmt.Sprintf(
		`Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(%s)`,
		psQuote(text))
	if err := runCmd(ctx, "powershell", "-NoProfile", "-Command", script); err != nil {
		return fmt.Errorf("powershell speech: %w", err)
	}
	return nil
}

// psQuote wraps text in a PowerShell single-quoted literal.
func psQuote(s string) string {
	quoted := make([]byte, 0, len(s)+2)
	quoted = append(quoted, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			quoted = append(quoted, '\'', '\'')
			continue
		}
		quoted = append(quoted, s[i])
	}
	return string(append(quoted, '\''))
}
