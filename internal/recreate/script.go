package recreate

import (
	"fmt"
	"strings"
)

// GenerateScript builds the narrative script for a description and the
// number of event photos. It is a pure function of its inputs.
func GenerateScript(description string, photoCount int) string {
	intro := "Recreating your special moment"
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		intro = "Recreating: " + trimmed
	}

	return strings.Join([]string{
		intro + ".",
		fmt.Sprintf("Scene 1: A gentle fade-in over %d captured memories, highlighting authentic emotions.", photoCount),
		"Scene 2: Subtle parallax on key photos, with warm cinematic color tones.",
		"Scene 3: Close-up emphasis on the main subject, matched to ambient music beats.",
		"Outro: Title card with date and a soft vignette, ending on a hopeful note.",
	}, "\n")
}
