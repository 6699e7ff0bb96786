package booking

import "errors"

// ErrNoModalitySelected is returned by Open before any Select call.
var ErrNoModalitySelected = errors.New("booking: no modality selected")

// Selector tracks a visitor's modality choice while they decide how to meet.
// Open produces the prefilled link and clears the choice so an abandoned
// picker never carries a stale selection into the next visit.
type Selector struct {
	catalog  *LinkCatalog
	selected Modality
	chosen   bool
}

// NewSelector creates a selector over the given catalog.
func NewSelector(catalog *LinkCatalog) *Selector {
	return &Selector{catalog: catalog}
}

// Select records the visitor's modality choice. Re-selecting is always
// allowed and replaces the previous choice.
func (s *Selector) Select(m Modality) {
	s.selected = m
	s.chosen = true
}

// Selected returns the current choice, if any.
func (s *Selector) Selected() (Modality, bool) {
	return s.selected, s.chosen
}

// Open returns the prefilled scheduling URL for the current choice and
// resets the selector. Calling Open with no selection is an error.
func (s *Selector) Open(name, email string) (string, error) {
	if !s.chosen {
		return "", ErrNoModalitySelected
	}
	u, err := s.catalog.HandoffURL(s.selected, name, email)
	if err != nil {
		return "", err
	}
	s.Reset()
	return u, nil
}

// Reset clears the current choice.
func (s *Selector) Reset() {
	s.selected = ""
	s.chosen = false
}
