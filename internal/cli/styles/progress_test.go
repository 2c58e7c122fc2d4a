package styles

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

func TestTheme_RenderEvent(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		name     string
		domain   string
		event    entity.ProgressEvent
		contains []string
	}{
		{
			name:     "started",
			domain:   "example.com",
			event:    entity.Started(),
			contains: []string{"example.com", "started"},
		},
		{
			name:     "loading shows percentage",
			domain:   "example.com",
			event:    entity.Loading(0.5),
			contains: []string{"loading 50%"},
		},
		{
			name:   "completed shows dimensions",
			domain: "example.com",
			event: entity.Completed(&entity.Icon{
				Domain: "example.com",
				Image:  image.NewRGBA(image.Rect(0, 0, 16, 16)),
				Format: "png",
			}),
			contains: []string{"completed 16x16 png"},
		},
		{
			name:     "failed shows error",
			domain:   "",
			event:    entity.Failed(errors.New("boom")),
			contains: []string{"(empty)", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := theme.RenderEvent(tt.domain, tt.event)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestTheme_RenderPath(t *testing.T) {
	out := NewTheme().RenderPath("disk", "/tmp/WebPageIconCache/example.com.ico")
	assert.Contains(t, out, "disk:")
	assert.Contains(t, out, "/tmp/WebPageIconCache/example.com.ico")
}
