package domain

// Availability labels exposed on the game read representation.
const (
	AvailabilityLabelAvailable   = "Available"
	AvailabilityLabelUnavailable = "Unavailable"
)

type Game struct {
	ID          int32  `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
	ReleaseDate string `json:"release_date"`
	IsAvailable bool   `json:"is_available"`
	// Derived from IsAvailable, never persisted.
	AvailabilityStatus string `json:"availability_status"`
}

func (g *Game) AvailabilityLabel() string {
	if g.IsAvailable {
		return AvailabilityLabelAvailable
	}
	return AvailabilityLabelUnavailable
}
