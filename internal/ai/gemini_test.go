package ai

import (
	"strings"
	"testing"
)

func TestCleanJSONString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"note": "Rider dispatched"}`, `{"note": "Rider dispatched"}`},
		{"```json\n{\"note\": \"Rider dispatched\"}\n```", `{"note": "Rider dispatched"}`},
		{"```\n{\"note\": \"ok\"}\n```", `{"note": "ok"}`},
		{"  {\"note\": \"ok\"}  ", `{"note": "ok"}`},
	}
	for _, tc := range cases {
		if got := cleanJSONString(tc.in); got != tc.want {
			t.Errorf("cleanJSONString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildNotePrompt(t *testing.T) {
	prompt := buildNotePrompt(NoteInput{
		TrackingID:    "CR-A1B2C3D4E5",
		CurrentStatus: "confirmed",
		TargetStatus:  "in_progress",
		RiderName:     "Jane Doe",
		RecentHistory: []string{"Booking created", "Status changed to Confirmed"},
	})

	for _, want := range []string{
		"CR-A1B2C3D4E5",
		"Current status: confirmed",
		"Target status: in_progress",
		"Assigned rider: Jane Doe",
		"- Status changed to Confirmed",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	prompt = buildNotePrompt(NoteInput{TrackingID: "CR-X", CurrentStatus: "pending", TargetStatus: "confirmed"})
	if strings.Contains(prompt, "Assigned rider") || strings.Contains(prompt, "Recent history") {
		t.Error("optional sections must be omitted when empty")
	}
}
