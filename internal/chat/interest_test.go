package chat

import "testing"

func TestShowsInterest(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"pricing question", "What does it cost?", true},
		{"keyword uppercase", "Can you give me a QUOTE?", true},
		{"keyword inside word", "I am interested in a new site", true},
		{"hire", "I want to hire you", true},
		{"consultation", "Can I book a consultation?", true},
		{"no keyword", "Tell me about your portfolio", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShowsInterest(tt.message); got != tt.want {
				t.Errorf("ShowsInterest(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestShouldPromptEmail(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		historyLen int
		email      string
		want       bool
	}{
		{"keyword triggers prompt", "What does it cost?", 0, "", true},
		{"long history triggers prompt", "Tell me more", 4, "", true},
		{"short history no keyword", "Tell me more", 3, "", false},
		{"email suppresses keyword", "What does it cost?", 0, "visitor@example.com", false},
		{"email suppresses history", "Tell me more", 10, "visitor@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldPromptEmail(tt.message, tt.historyLen, tt.email)
			if got != tt.want {
				t.Errorf("ShouldPromptEmail(%q, %d, %q) = %v, want %v",
					tt.message, tt.historyLen, tt.email, got, tt.want)
			}
		})
	}
}
