package ai

// NoteInput is the context handed to the assistant for one suggestion.
type NoteInput struct {
	TrackingID    string   `json:"tracking_id"`
	CurrentStatus string   `json:"current_status"`
	TargetStatus  string   `json:"target_status"`
	RiderName     string   `json:"rider_name,omitempty"`
	RecentHistory []string `json:"recent_history,omitempty"`
}

// noteResult is the structured JSON response expected from the model.
type noteResult struct {
	Note string `json:"note"`
}
