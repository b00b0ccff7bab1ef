package recipe

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoShareData is returned when a link carries no recipe payload.
var ErrNoShareData = errors.New("link has no recipe data")

// Encode serializes r into URL-safe base64 without padding.
func Encode(r *Recipe) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode recipe: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ShareURL builds a link whose data parameter is the recipe itself; nothing is
// stored server side.
func ShareURL(base string, r *Recipe) (string, error) {
	data, err := Encode(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + "/share?data=" + data, nil
}

// DecodeShared accepts a share link or a bare payload and returns the
// validated recipe inside it.
func DecodeShared(link string) (*Recipe, error) {
	link = strings.TrimSpace(link)
	data := link
	if strings.Contains(link, "?") || strings.Contains(link, "://") {
		u, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("parse link: %w", err)
		}
		data = u.Query().Get("data")
	}
	if data == "" {
		return nil, ErrNoShareData
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return nil, fmt.Errorf("decode share data: %w", err)
	}
	return Decode(b)
}

// ShareTargets are ready-made links for common share channels.
type ShareTargets struct {
	URL      string
	Text     string
	Email    string
	Facebook string
	Twitter  string
	WhatsApp string
}

// Targets builds the share links for a recipe already turned into shareURL.
func Targets(shareURL, title string) ShareTargets {
	if strings.TrimSpace(title) == "" {
		title = "Recipe"
	}
	text := "Check out this recipe: " + title
	return ShareTargets{
		URL:      shareURL,
		Text:     text,
		Email:    "mailto:?subject=" + escape(text) + "&body=" + escape("Recipe Link: "+shareURL),
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + escape(shareURL),
		Twitter:  "https://twitter.com/intent/tweet?url=" + escape(shareURL) + "&text=" + escape(text),
		WhatsApp: "https://wa.me/?text=" + escape(text+" - "+shareURL),
	}
}

// escape percent-encodes s for a query value, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
