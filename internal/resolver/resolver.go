// Package resolver turns a TikTok URL into structured downloadable media by
// running ordered pattern cascades over the mirror's HTML response.
package resolver

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// DocumentFetcher fetches the raw HTML document for one query URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Resolver implements domain.MediaResolver over a DocumentFetcher.
type Resolver struct {
	fetcher DocumentFetcher
	logger  zerolog.Logger

	// PreferredHost ranks asset links served from this mirror host ahead of
	// the rest. Heuristic tuned to the current upstream markup.
	PreferredHost string
}

// New creates a Resolver with the default asset preference policy.
func New(fetcher DocumentFetcher, logger zerolog.Logger) *Resolver {
	return &Resolver{
		fetcher:       fetcher,
		logger:        logger,
		PreferredHost: "snapcdn.app",
	}
}

// Resolve fetches the mirror document for rawURL and extracts media from it.
// Each extraction step degrades independently: a step that matches nothing
// leaves its field empty and never aborts the others.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*domain.ResolvedMedia, error) {
	if !ValidURL(rawURL) {
		return nil, domain.ErrInvalidURL
	}

	doc, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	media := &domain.ResolvedMedia{
		Title:        extractTitle(doc),
		Creator:      extractCreator(doc),
		ThumbnailURL: extractThumbnail(doc),
		ImageURLs:    extractAlbumImages(doc),
	}
	media.VideoCandidates, media.AudioURL = r.extractAssetLinks(doc)

	r.logger.Debug().
		Str("url", rawURL).
		Str("creator", media.Creator).
		Int("videos", len(media.VideoCandidates)).
		Int("images", len(media.ImageURLs)).
		Bool("audio", media.AudioURL != "").
		Msg("Media resolved")

	return media, nil
}

// extractTitle runs the named-container cascade, then falls back to loose
// hashtag-bearing text longer than 5 characters.
func extractTitle(doc string) string {
	for _, pattern := range titlePatterns {
		match := pattern.FindStringSubmatch(doc)
		if match == nil {
			continue
		}
		if title := strings.TrimSpace(stripTags(match[1])); title != "" {
			return title
		}
	}

	for _, pattern := range hashtagTextPatterns {
		match := pattern.FindStringSubmatch(doc)
		if match == nil {
			continue
		}
		if text := strings.TrimSpace(match[1]); len(text) > 5 {
			return text
		}
	}

	return ""
}

// extractCreator returns the handle without the leading @.
func extractCreator(doc string) string {
	if match := creatorAnchoredPattern.FindStringSubmatch(doc); match != nil {
		return match[1]
	}
	if match := creatorLoosePattern.FindStringSubmatch(doc); match != nil {
		return match[1]
	}
	return ""
}

func extractThumbnail(doc string) string {
	if match := thumbnailPattern.FindStringSubmatch(doc); match != nil {
		return match[1]
	}
	return ""
}

// extractAssetLinks collects download links from the first actions section
// found, partitions them into video- and audio-shaped buckets, and orders
// video candidates preferred-host-first, capped at two. When no section
// yields any link, the whole document is scanned with the same rules.
func (r *Resolver) extractAssetLinks(doc string) ([]string, string) {
	var section string
	for _, pattern := range sectionPatterns {
		if match := pattern.FindString(doc); match != "" {
			section = match
			break
		}
	}

	links := collectHrefs(section)
	if len(links) == 0 {
		links = collectHrefs(doc)
	}

	videos, audios := partitionLinks(links)
	videos = orderPreferredFirst(videos, r.PreferredHost)
	if len(videos) > 2 {
		videos = videos[:2]
	}

	var audio string
	if len(audios) > 0 {
		audio = audios[0]
	}
	return videos, audio
}

// extractAlbumImages collects image sources from the album list in document
// order. Runs independently of the asset-link extraction.
func extractAlbumImages(doc string) []string {
	match := albumListPattern.FindStringSubmatch(doc)
	if match == nil {
		return nil
	}

	var images []string
	for _, img := range imgSrcPattern.FindAllStringSubmatch(match[1], -1) {
		images = append(images, img[1])
	}
	return images
}

func collectHrefs(s string) []string {
	var links []string
	for _, match := range hrefPattern.FindAllStringSubmatch(s, -1) {
		links = append(links, match[1])
	}
	return links
}

// partitionLinks buckets links by filename and keyword hints. A link lacking
// both video and audio hints counts as video-shaped; a link carrying both
// kinds of hints lands in both buckets.
func partitionLinks(links []string) (videos, audios []string) {
	for _, link := range links {
		audioShaped := strings.Contains(link, ".mp3") || strings.Contains(link, "audio")
		videoShaped := strings.Contains(link, ".mp4") || strings.Contains(link, "video") || !audioShaped

		if videoShaped {
			videos = append(videos, link)
		}
		if audioShaped {
			audios = append(audios, link)
		}
	}
	return videos, audios
}

// orderPreferredFirst stable-partitions links from the preferred host to the
// front, keeping relative order within each group.
func orderPreferredFirst(links []string, host string) []string {
	if host == "" || len(links) < 2 {
		return links
	}

	ordered := make([]string, 0, len(links))
	for _, link := range links {
		if strings.Contains(link, host) {
			ordered = append(ordered, link)
		}
	}
	for _, link := range links {
		if !strings.Contains(link, host) {
			ordered = append(ordered, link)
		}
	}
	return ordered
}
