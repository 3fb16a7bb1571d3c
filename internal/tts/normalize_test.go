package tts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "url becomes spoken domain",
			in:   "see https://github.com/acme/herald/pull/42 for details",
			want: "see github dot com for details",
		},
		{
			name: "url with port",
			in:   "listening on http://localhost:38555/api/health",
			want: "listening on localhost",
		},
		{
			name: "absolute path collapses to filename",
			in:   "wrote /home/dev/projects/herald/internal/announce/queue.go",
			want: "wrote queue.go",
		},
		{
			name: "relative path keeps parent and filename",
			in:   "edited internal/announce/queue.go just now",
			want: "edited announce/queue.go just now",
		},
		{
			name: "short relative path untouched",
			in:   "edited announce/queue.go just now",
			want: "edited announce/queue.go just now",
		},
		{
			name: "long hex run becomes hash prefix",
			in:   "commit 3f9a1c27be44d0e8 pushed",
			want: "commit hash 3f9a1c pushed",
		},
		{
			name: "all-digit run untouched",
			in:   "port 12345678 open",
			want: "port 12345678 open",
		},
		{
			name: "dotted identifier keeps last segment",
			in:   "calling com.example.billing.InvoiceService now",
			want: "calling InvoiceService now",
		},
		{
			name: "dotted filename untouched",
			in:   "see archive.backup.prod.json here",
			want: "see archive.backup.prod.json here",
		},
		{
			name: "version numbers untouched",
			in:   "upgraded to 1.2.3.4",
			want: "upgraded to 1.2.3.4",
		},
		{
			name: "whitespace collapsed and trimmed",
			in:   "  Agent   finished \n the task  ",
			want: "Agent finished the task",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"see https://github.com/acme/herald for details",
		"/home/dev/projects/herald/internal/announce/queue.go",
		"deadbeef00112233445566778899aabb",
		"com.example.billing.InvoiceService",
		"mixed: https://docs.example.io/a/b and internal/tts/normalize.go at 3f9a1c27be44",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
