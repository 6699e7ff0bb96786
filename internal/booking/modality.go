package booking

import (
	"fmt"
	"strings"
)

// Modality is the consultation format a visitor picks before booking.
type Modality string

const (
	ModalityPhone    Modality = "phone"
	ModalityVideo    Modality = "video"
	ModalityInPerson Modality = "in-person"
)

// Modalities lists every supported modality in display order.
func Modalities() []Modality {
	return []Modality{ModalityPhone, ModalityVideo, ModalityInPerson}
}

// ParseModality normalizes and validates a modality string.
func ParseModality(s string) (Modality, error) {
	switch Modality(strings.ToLower(strings.TrimSpace(s))) {
	case ModalityPhone:
		return ModalityPhone, nil
	case ModalityVideo:
		return ModalityVideo, nil
	case ModalityInPerson:
		return ModalityInPerson, nil
	default:
		return "", fmt.Errorf("booking: unknown modality %q", s)
	}
}
