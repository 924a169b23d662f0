package recreate

// Screen is one of the four mutually exclusive top-level views.
type Screen int

const (
	ScreenInput Screen = iota
	ScreenLoading
	ScreenScriptReview
	ScreenResults
)

// String returns the screen name used in logs and the header timeline
func (s Screen) String() string {
	switch s {
	case ScreenInput:
		return "input"
	case ScreenLoading:
		return "loading"
	case ScreenScriptReview:
		return "script"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}
