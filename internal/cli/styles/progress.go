package styles

import (
	"fmt"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

// DomainBadge renders a domain badge.
func (t *Theme) DomainBadge(domain string) string {
	if domain == "" {
		return t.BadgeMuted.Render("(empty)")
	}
	return t.Badge.Render(domain)
}

// RenderEvent renders one progress event for domain on a single line.
func (t *Theme) RenderEvent(domain string, ev entity.ProgressEvent) string {
	badge := t.DomainBadge(domain)

	switch ev.Kind {
	case entity.ProgressStarted:
		return fmt.Sprintf("%s %s", badge, t.Subtle.Render(IconClock+" started"))
	case entity.ProgressLoading:
		return fmt.Sprintf("%s %s", badge, t.Normal.Render(fmt.Sprintf("%s loading %.0f%%", IconArrow, ev.Fraction*100)))
	case entity.ProgressCompleted:
		detail := "completed"
		if ev.Icon != nil && ev.Icon.Image != nil {
			b := ev.Icon.Image.Bounds()
			detail = fmt.Sprintf("completed %dx%d %s", b.Dx(), b.Dy(), ev.Icon.Format)
		}
		return fmt.Sprintf("%s %s", badge, t.SuccessStyle.Render(IconCheck+" "+detail))
	case entity.ProgressFailed:
		reason := "failed"
		if ev.Err != nil {
			reason = ev.Err.Error()
		}
		return fmt.Sprintf("%s %s", badge, t.ErrorStyle.Render(IconX+" "+reason))
	default:
		return fmt.Sprintf("%s %s", badge, ev.Kind)
	}
}

// RenderPath renders a labeled filesystem path.
func (t *Theme) RenderPath(label, path string) string {
	return fmt.Sprintf("%s %s %s", t.Subtle.Render(IconFolder), t.Subtle.Render(label+":"), t.Normal.Render(path))
}
