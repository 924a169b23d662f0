package shared

import (
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// ============================================================================
// Transition Messages
// These messages change the active screen and are handled by AppModel
// ============================================================================

// GenerateRequestedMsg is sent by InputScreen when the user asks to generate
type GenerateRequestedMsg struct{}

// GenerationCompleteMsg is sent when the simulated delay for a generation ends
type GenerationCompleteMsg struct {
	Generation recreate.Generation
}

// ApproveScriptMsg is sent by ScriptScreen when the script is approved
type ApproveScriptMsg struct{}

// RestartMsg is sent by any screen (or the sidebar) to start over
type RestartMsg struct{}

// ============================================================================
// Internal Messages
// These messages are used within screens for internal state management
// ============================================================================

// Field identifies a photo field on the input screen
type Field int

const (
	FieldSubject Field = iota
	FieldEvents
)

// String returns the field name used in logs
func (f Field) String() string {
	if f == FieldSubject {
		return "subject"
	}

	return "events"
}

// ImagesLoadedMsg carries the outcome of loading photo specs for a field
type ImagesLoadedMsg struct {
	Field  Field
	Images []recreate.UploadedImage
	Batch  imagefile.Batch
	// Epoch is the flow epoch the load was started in
	Epoch int
}

// PickedMsg carries the paths chosen in the native file dialog
type PickedMsg struct {
	Field Field
	Paths []string
	Err   error
}

// CopiedMsg reports the outcome of copying the script to the clipboard
type CopiedMsg struct {
	Err error
}
