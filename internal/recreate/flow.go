// Package recreate holds the event-recreation flow: which screen is active,
// the user's inputs, and the simulated script generation.
//
// A Flow is owned by a single goroutine (the UI update loop). It performs no
// I/O and never blocks; the simulated delay is scheduled by the caller, which
// hands the Generation ticket back through CompleteGeneration.
package recreate

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/joe/event-recreator/pkg/imagefile"
)

// DefaultGenerationDelay is how long the simulated generation takes
const DefaultGenerationDelay = 3000 * time.Millisecond

// ErrNotEditing is returned by EditScript when edit mode is off
var ErrNotEditing = errors.New("script is not in edit mode")

// UploadedImage pairs a loaded image with the preview reference used to
// display it.
type UploadedImage struct {
	Image imagefile.Image
	// Preview is an opaque handle resolved by the preview registry
	Preview string
}

// Generation is the ticket for one pending simulated generation. The inputs
// are captured when the generation is requested.
type Generation struct {
	ID          int
	Description string
	PhotoCount  int
	RequestedAt time.Time
}

// Op names the operation that produced a Change
type Op string

const (
	OpSubject     Op = "subject"
	OpEvents      Op = "events"
	OpDescription Op = "description"
	OpGenerate    Op = "generate"
	OpComplete    Op = "complete"
	OpRegenerate  Op = "regenerate"
	OpEditMode    Op = "edit-mode"
	OpEdit        Op = "edit"
	OpApprove     Op = "approve"
	OpRestart     Op = "restart"
)

// Change is published to subscribers after every mutation
type Change struct {
	Op   Op
	From Screen
	To   Screen
}

// Option configures a Flow
type Option func(*Flow)

// WithLogger sets the logger used for transition and stale-completion records
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Flow) {
		f.log = logger
	}
}

// WithReleaser registers a function called for every image that leaves the
// session, either replaced or cleared by Restart.
func WithReleaser(release func(UploadedImage)) Option {
	return func(f *Flow) {
		f.release = release
	}
}

// WithClock overrides the clock used to stamp generation requests
func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.now = now
	}
}

// Flow is the state machine behind the four screens
type Flow struct {
	screen      Screen
	description string
	subject     *UploadedImage
	events      []UploadedImage
	script      string
	editing     bool

	pending *Generation
	lastID  int
	epoch   int

	log         zerolog.Logger
	release     func(UploadedImage)
	now         func() time.Time
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Change)
}

// New creates a flow at the Input screen with empty inputs
func New(opts ...Option) *Flow {
	f := &Flow{
		screen: ScreenInput,
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Screen returns the active screen
func (f *Flow) Screen() Screen {
	return f.screen
}

// Description returns the event description as typed
func (f *Flow) Description() string {
	return f.description
}

// Subject returns the subject photo, if one has been uploaded
func (f *Flow) Subject() (UploadedImage, bool) {
	if f.subject == nil {
		return UploadedImage{}, false
	}

	return *f.subject, true
}

// EventPhotos returns a copy of the event photos in insertion order
func (f *Flow) EventPhotos() []UploadedImage {
	out := make([]UploadedImage, len(f.events))
	copy(out, f.events)

	return out
}

// EventPhotoCount returns the number of event photos
func (f *Flow) EventPhotoCount() int {
	return len(f.events)
}

// Script returns the generated (or edited) script
func (f *Flow) Script() string {
	return f.script
}

// Editing reports whether the script is in edit mode
func (f *Flow) Editing() bool {
	return f.editing
}

// Pending returns the outstanding generation, if any
func (f *Flow) Pending() (Generation, bool) {
	if f.pending == nil {
		return Generation{}, false
	}

	return *f.pending, true
}

// Epoch identifies the current session. It changes on every Restart, so work
// started before a restart can be recognised when it reports back.
func (f *Flow) Epoch() int {
	return f.epoch
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription.
func (f *Flow) Subscribe(fn func(Change)) func() {
	f.nextSubID++
	id := f.nextSubID
	f.subscribers = append(f.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range f.subscribers {
			if sub.id == id {
				f.subscribers = append(f.subscribers[:i], f.subscribers[i+1:]...)
				return
			}
		}
	}
}

// UploadSubjectPhoto sets the subject photo, replacing any previous one.
// Non-image inputs are ignored and false is returned.
func (f *Flow) UploadSubjectPhoto(img UploadedImage) bool {
	if !img.Image.IsImage() {
		f.log.Debug().Str("path", img.Image.Source).Str("type", img.Image.ContentType).Msg("ignoring non-image subject")
		return false
	}

	if f.subject != nil {
		f.releaseImage(*f.subject)
	}

	f.subject = &img
	f.publish(OpSubject, f.screen)

	return true
}

// AddEventPhotos appends the image inputs to the event photos, keeping their
// order. Non-image inputs are skipped. Returns how many were added.
func (f *Flow) AddEventPhotos(imgs []UploadedImage) int {
	added := 0
	for _, img := range imgs {
		if !img.Image.IsImage() {
			f.log.Debug().Str("path", img.Image.Source).Str("type", img.Image.ContentType).Msg("ignoring non-image event photo")
			continue
		}
		f.events = append(f.events, img)
		added++
	}

	if added > 0 {
		f.publish(OpEvents, f.screen)
	}

	return added
}

// SetDescription stores the event description verbatim
func (f *Flow) SetDescription(text string) {
	if text == f.description {
		return
	}

	f.description = text
	f.publish(OpDescription, f.screen)
}

// CanGenerate reports whether the inputs allow generation: a non-blank
// description, a subject photo and at least one event photo.
func (f *Flow) CanGenerate() bool {
	return strings.TrimSpace(f.description) != "" && f.subject != nil && len(f.events) > 0
}

// RequestGenerate moves Input to Loading and returns the ticket to complete
// once the simulated delay has elapsed. It does nothing and returns false
// when generation is not available.
func (f *Flow) RequestGenerate() (Generation, bool) {
	if f.screen != ScreenInput || !f.CanGenerate() {
		return Generation{}, false
	}

	f.lastID++
	gen := Generation{
		ID:          f.lastID,
		Description: f.description,
		PhotoCount:  len(f.events),
		RequestedAt: f.now(),
	}
	f.pending = &gen

	from := f.screen
	f.screen = ScreenLoading
	f.publish(OpGenerate, from)

	return gen, true
}

// CompleteGeneration writes the script for gen and moves to ScriptReview.
//
// The completion is applied even when gen is no longer the pending
// generation (for example after a Restart while loading); that case is
// logged as a warning.
func (f *Flow) CompleteGeneration(gen Generation) {
	if f.pending == nil || f.pending.ID != gen.ID || f.screen != ScreenLoading {
		f.log.Warn().
			Int("generation", gen.ID).
			Str("screen", f.screen.String()).
			Msg("applying stale generation completion")
	}

	f.pending = nil
	f.script = GenerateScript(gen.Description, gen.PhotoCount)
	f.editing = false

	from := f.screen
	f.screen = ScreenScriptReview
	f.publish(OpComplete, from)
}

// RegenerateScript recomputes the script from the current inputs
func (f *Flow) RegenerateScript() {
	f.script = GenerateScript(f.description, len(f.events))
	f.publish(OpRegenerate, f.screen)
}

// ToggleEditMode flips edit mode without touching the script
func (f *Flow) ToggleEditMode() {
	f.editing = !f.editing
	f.publish(OpEditMode, f.screen)
}

// EditScript replaces the script with text. Only valid in edit mode.
func (f *Flow) EditScript(text string) error {
	if !f.editing {
		return ErrNotEditing
	}

	if text == f.script {
		return nil
	}

	f.script = text
	f.publish(OpEdit, f.screen)

	return nil
}

// ApproveScript moves ScriptReview to Results. It returns false on any other
// screen.
func (f *Flow) ApproveScript() bool {
	if f.screen != ScreenScriptReview {
		return false
	}

	f.screen = ScreenResults
	f.publish(OpApprove, ScreenScriptReview)

	return true
}

// Restart clears every input and the script and returns to Input
func (f *Flow) Restart() {
	if f.subject != nil {
		f.releaseImage(*f.subject)
	}
	for _, img := range f.events {
		f.releaseImage(img)
	}

	from := f.screen
	f.screen = ScreenInput
	f.description = ""
	f.subject = nil
	f.events = nil
	f.script = ""
	f.editing = false
	f.pending = nil
	f.epoch++

	f.publish(OpRestart, from)
}

func (f *Flow) publish(op Op, from Screen) {
	change := Change{Op: op, From: from, To: f.screen}
	if from != f.screen {
		f.log.Info().
			Str("op", string(op)).
			Str("from", from.String()).
			Str("screen", f.screen.String()).
			Msg("screen transition")
	}

	for _, sub := range append([]subscriber(nil), f.subscribers...) {
		sub.fn(change)
	}
}

func (f *Flow) releaseImage(img UploadedImage) {
	if f.release != nil {
		f.release(img)
	}
}
