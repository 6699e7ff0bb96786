package booking

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkCatalog maps each consultation modality to its scheduling-page URL.
// The pages live on the external scheduler; this service only builds
// prefilled links, it never talks to the scheduler's API.
type LinkCatalog struct {
	links map[Modality]string
}

// NewLinkCatalog builds a catalog from the per-modality base URLs. Empty
// URLs are allowed; requesting that modality then fails at lookup time.
func NewLinkCatalog(phoneURL, videoURL, inPersonURL string) *LinkCatalog {
	return &LinkCatalog{links: map[Modality]string{
		ModalityPhone:    strings.TrimSpace(phoneURL),
		ModalityVideo:    strings.TrimSpace(videoURL),
		ModalityInPerson: strings.TrimSpace(inPersonURL),
	}}
}

// HandoffURL returns the scheduling URL for a modality with the visitor's
// name and email prefilled. Empty params are omitted rather than sent blank.
func (c *LinkCatalog) HandoffURL(modality Modality, name, email string) (string, error) {
	base, ok := c.links[modality]
	if !ok || base == "" {
		return "", fmt.Errorf("booking: no scheduling link configured for modality %q", modality)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("booking: invalid scheduling link for modality %q: %w", modality, err)
	}

	q := u.Query()
	if name = strings.TrimSpace(name); name != "" {
		q.Set("name", name)
	}
	if email = strings.TrimSpace(email); email != "" {
		q.Set("email", email)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
