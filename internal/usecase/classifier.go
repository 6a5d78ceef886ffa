package usecase

import (
	"strings"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// Classifier decides the delivery shape for a resolution result and picks
// the preferred asset among candidates.
type Classifier struct {
	botUsername string

	// PreferredMarkers are URL substrings that mark a higher-reliability
	// video candidate. A marked candidate outranks unmarked ones regardless
	// of position. Heuristic tuned to the current upstream mirror.
	PreferredMarkers []string
}

// NewClassifier creates a Classifier with the default preference policy.
func NewClassifier(botUsername string) *Classifier {
	return &Classifier{
		botUsername:      botUsername,
		PreferredMarkers: []string{"snapcdn.app", "hd", "HD"},
	}
}

// Classify maps media to exactly one delivery plan. Albums win over videos;
// both empty means unresolvable. It never fails.
func (c *Classifier) Classify(media *domain.ResolvedMedia) domain.DeliveryPlan {
	caption := c.buildCaption(media)

	switch {
	case len(media.ImageURLs) == 1:
		return domain.DeliveryPlan{
			Kind:    domain.PlanImageSingle,
			URL:     media.ImageURLs[0],
			Caption: caption,
		}

	case len(media.ImageURLs) > 1:
		items := make([]domain.AlbumItem, 0, len(media.ImageURLs))
		for i, url := range media.ImageURLs {
			item := domain.AlbumItem{URL: url}
			// Captions on group sends apply to the lead item only.
			if i == 0 {
				item.Caption = caption
			}
			items = append(items, item)
		}
		return domain.DeliveryPlan{Kind: domain.PlanImageAlbum, Items: items}

	case len(media.VideoCandidates) > 0:
		return domain.DeliveryPlan{
			Kind:    domain.PlanVideo,
			URL:     c.pickVideo(media.VideoCandidates),
			Caption: caption,
		}
	}

	return domain.DeliveryPlan{Kind: domain.PlanUnresolvable}
}

// pickVideo returns the first candidate carrying a preferred marker, or the
// first candidate when none is marked.
func (c *Classifier) pickVideo(candidates []string) string {
	for _, candidate := range candidates {
		for _, marker := range c.PreferredMarkers {
			if strings.Contains(candidate, marker) {
				return candidate
			}
		}
	}
	return candidates[0]
}

// buildCaption composes the fixed completion banner, the share line, then
// the description and creator paragraphs in that order.
func (c *Classifier) buildCaption(media *domain.ResolvedMedia) string {
	var b strings.Builder
	b.WriteString("✅ Download Completed\n")
	b.WriteString("🔁 Share: t.me/")
	b.WriteString(c.botUsername)

	if media.Title != "" {
		b.WriteString("\n\n")
		b.WriteString(media.Title)
	}
	if media.Creator != "" {
		b.WriteString("\n\n👤 @")
		b.WriteString(media.Creator)
	}

	return b.String()
}
