//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package recreate_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/pkg/imagefile"
)

func photo(name string) recreate.UploadedImage {
	return recreate.UploadedImage{
		Image:   imagefile.Image{Name: name, Source: "/photos/" + name, ContentType: "image/jpeg"},
		Preview: "preview:" + name,
	}
}

func document(name string) recreate.UploadedImage {
	return recreate.UploadedImage{
		Image: imagefile.Image{Name: name, Source: "/docs/" + name, ContentType: "application/pdf"},
	}
}

func names(imgs []recreate.UploadedImage) []string {
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, img.Image.Name)
	}

	return out
}

// readyFlow returns a flow that satisfies every generation precondition
func readyFlow(opts ...recreate.Option) *recreate.Flow {
	flow := recreate.New(opts...)
	flow.SetDescription("My wedding")
	flow.UploadSubjectPhoto(photo("me.jpg"))
	flow.AddEventPhotos([]recreate.UploadedImage{photo("a.jpg"), photo("b.jpg"), photo("c.jpg")})

	return flow
}

func TestNewFlowStartsEmptyAtInput(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()

	g.Expect(flow.Screen()).To(Equal(recreate.ScreenInput))
	g.Expect(flow.Description()).To(BeEmpty())
	_, hasSubject := flow.Subject()
	g.Expect(hasSubject).To(BeFalse())
	g.Expect(flow.EventPhotos()).To(BeEmpty())
	g.Expect(flow.Script()).To(BeEmpty())
	g.Expect(flow.Editing()).To(BeFalse())
	g.Expect(flow.CanGenerate()).To(BeFalse())
}

func TestAddEventPhotosAppendsInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	g.Expect(flow.AddEventPhotos([]recreate.UploadedImage{photo("a.jpg"), photo("b.jpg")})).To(Equal(2))
	g.Expect(flow.AddEventPhotos([]recreate.UploadedImage{photo("c.jpg")})).To(Equal(1))

	g.Expect(names(flow.EventPhotos())).To(Equal([]string{"a.jpg", "b.jpg", "c.jpg"}))
}

func TestAddEventPhotosSkipsNonImages(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	added := flow.AddEventPhotos([]recreate.UploadedImage{photo("a.jpg"), document("notes.pdf"), photo("b.jpg")})

	g.Expect(added).To(Equal(2))
	g.Expect(names(flow.EventPhotos())).To(Equal([]string{"a.jpg", "b.jpg"}))
}

func TestEventPhotosReturnsCopy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	flow.AddEventPhotos([]recreate.UploadedImage{photo("a.jpg")})

	photos := flow.EventPhotos()
	photos[0] = photo("mutated.jpg")

	g.Expect(names(flow.EventPhotos())).To(Equal([]string{"a.jpg"}))
}

func TestUploadSubjectPhotoReplaces(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var released []string
	flow := recreate.New(recreate.WithReleaser(func(img recreate.UploadedImage) {
		released = append(released, img.Image.Name)
	}))

	g.Expect(flow.UploadSubjectPhoto(photo("first.jpg"))).To(BeTrue())
	g.Expect(flow.UploadSubjectPhoto(photo("second.jpg"))).To(BeTrue())

	subject, ok := flow.Subject()
	g.Expect(ok).To(BeTrue())
	g.Expect(subject.Image.Name).To(Equal("second.jpg"))
	g.Expect(released).To(Equal([]string{"first.jpg"}))
}

func TestUploadSubjectPhotoIgnoresNonImage(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	flow.UploadSubjectPhoto(photo("me.jpg"))

	g.Expect(flow.UploadSubjectPhoto(document("resume.pdf"))).To(BeFalse())

	subject, _ := flow.Subject()
	g.Expect(subject.Image.Name).To(Equal("me.jpg"))
}

func TestCanGenerateRequiresEveryInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		subject     bool
		events      int
		want        bool
	}{
		{name: "all present", description: "Concert", subject: true, events: 2, want: true},
		{name: "empty description", description: "", subject: true, events: 2, want: false},
		{name: "whitespace description", description: "  \t\n ", subject: true, events: 2, want: false},
		{name: "no subject", description: "Concert", subject: false, events: 2, want: false},
		{name: "no event photos", description: "Concert", subject: true, events: 0, want: false},
		{name: "nothing", description: "", subject: false, events: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			flow := recreate.New()
			flow.SetDescription(tt.description)
			if tt.subject {
				flow.UploadSubjectPhoto(photo("me.jpg"))
			}
			for i := range tt.events {
				flow.AddEventPhotos([]recreate.UploadedImage{photo(strings.Repeat("e", i+1) + ".jpg")})
			}

			g.Expect(flow.CanGenerate()).To(Equal(tt.want))

			_, ok := flow.RequestGenerate()
			g.Expect(ok).To(Equal(tt.want))
			if tt.want {
				g.Expect(flow.Screen()).To(Equal(recreate.ScreenLoading))
			} else {
				g.Expect(flow.Screen()).To(Equal(recreate.ScreenInput))
			}
		})
	}
}

func TestGenerationScenario(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	requested := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	flow := readyFlow(recreate.WithClock(func() time.Time { return requested }))

	gen, ok := flow.RequestGenerate()
	g.Expect(ok).To(BeTrue())
	g.Expect(gen.PhotoCount).To(Equal(3))
	g.Expect(gen.Description).To(Equal("My wedding"))
	g.Expect(gen.RequestedAt).To(Equal(requested))
	g.Expect(flow.Screen()).To(Equal(recreate.ScreenLoading))

	pending, hasPending := flow.Pending()
	g.Expect(hasPending).To(BeTrue())
	g.Expect(pending.ID).To(Equal(gen.ID))

	flow.CompleteGeneration(gen)

	lines := strings.Split(flow.Script(), "\n")
	g.Expect(flow.Screen()).To(Equal(recreate.ScreenScriptReview))
	g.Expect(lines[0]).To(Equal("Recreating: My wedding."))
	g.Expect(lines[1]).To(ContainSubstring("3"))
	g.Expect(flow.Editing()).To(BeFalse())
	_, hasPending = flow.Pending()
	g.Expect(hasPending).To(BeFalse())
}

func TestRequestGenerateOnlyFromInput(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	first, ok := flow.RequestGenerate()
	g.Expect(ok).To(BeTrue())

	_, again := flow.RequestGenerate()
	g.Expect(again).To(BeFalse(), "a second request while loading is unavailable")

	pending, _ := flow.Pending()
	g.Expect(pending.ID).To(Equal(first.ID))
}

func TestCompletionUsesInputsCapturedAtRequest(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()

	flow.SetDescription("Something else")
	flow.AddEventPhotos([]recreate.UploadedImage{photo("late.jpg")})
	flow.CompleteGeneration(gen)

	g.Expect(flow.Script()).To(Equal(recreate.GenerateScript("My wedding", 3)))
}

func TestStaleCompletionAfterRestartStillApplies(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()

	flow.Restart()
	g.Expect(flow.Screen()).To(Equal(recreate.ScreenInput))

	flow.CompleteGeneration(gen)

	g.Expect(flow.Screen()).To(Equal(recreate.ScreenScriptReview))
	g.Expect(flow.Script()).To(HavePrefix("Recreating: My wedding."))
}

func TestRegenerateUsesCurrentInputsAndKeepsScreen(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()
	flow.CompleteGeneration(gen)

	first := flow.Script()
	flow.RegenerateScript()
	g.Expect(flow.Script()).To(Equal(first), "regeneration is idempotent for unchanged inputs")

	flow.AddEventPhotos([]recreate.UploadedImage{photo("d.jpg")})
	flow.RegenerateScript()

	g.Expect(flow.Screen()).To(Equal(recreate.ScreenScriptReview))
	g.Expect(strings.Split(flow.Script(), "\n")[1]).To(ContainSubstring("4 captured memories"))
}

func TestEditScriptRequiresEditMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()
	flow.CompleteGeneration(gen)
	original := flow.Script()

	g.Expect(flow.EditScript("sneaky")).To(MatchError(recreate.ErrNotEditing))
	g.Expect(flow.Script()).To(Equal(original))
}

func TestEditScenario(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()
	flow.CompleteGeneration(gen)

	flow.ToggleEditMode()
	g.Expect(flow.Editing()).To(BeTrue())
	g.Expect(flow.EditScript("custom text")).To(Succeed())
	flow.ToggleEditMode()

	g.Expect(flow.Editing()).To(BeFalse())
	g.Expect(flow.Script()).To(Equal("custom text"))
}

func TestToggleEditModeLeavesScript(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	gen, _ := flow.RequestGenerate()
	flow.CompleteGeneration(gen)
	script := flow.Script()

	flow.ToggleEditMode()
	flow.ToggleEditMode()

	g.Expect(flow.Script()).To(Equal(script))
}

func TestApproveScriptOnlyFromReview(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := readyFlow()
	g.Expect(flow.ApproveScript()).To(BeFalse())
	g.Expect(flow.Screen()).To(Equal(recreate.ScreenInput))

	gen, _ := flow.RequestGenerate()
	g.Expect(flow.ApproveScript()).To(BeFalse())

	flow.CompleteGeneration(gen)
	g.Expect(flow.ApproveScript()).To(BeTrue())
	g.Expect(flow.Screen()).To(Equal(recreate.ScreenResults))
}

func TestRestartStartsANewEpoch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	first := flow.Epoch()

	flow.SetDescription("Beach day")
	g.Expect(flow.Epoch()).To(Equal(first), "only Restart changes the epoch")

	flow.Restart()
	g.Expect(flow.Epoch()).NotTo(Equal(first))
}

func TestRestartFromEveryScreen(t *testing.T) {
	t.Parallel()

	advance := map[recreate.Screen]func(*recreate.Flow){
		recreate.ScreenInput: func(*recreate.Flow) {},
		recreate.ScreenLoading: func(f *recreate.Flow) {
			f.RequestGenerate()
		},
		recreate.ScreenScriptReview: func(f *recreate.Flow) {
			gen, _ := f.RequestGenerate()
			f.CompleteGeneration(gen)
			f.ToggleEditMode()
		},
		recreate.ScreenResults: func(f *recreate.Flow) {
			gen, _ := f.RequestGenerate()
			f.CompleteGeneration(gen)
			f.ApproveScript()
		},
	}

	for screen, steps := range advance {
		t.Run(screen.String(), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			var released []string
			flow := readyFlow(recreate.WithReleaser(func(img recreate.UploadedImage) {
				released = append(released, img.Image.Name)
			}))
			steps(flow)
			g.Expect(flow.Screen()).To(Equal(screen))

			flow.Restart()

			g.Expect(flow.Screen()).To(Equal(recreate.ScreenInput))
			g.Expect(flow.Description()).To(BeEmpty())
			_, hasSubject := flow.Subject()
			g.Expect(hasSubject).To(BeFalse())
			g.Expect(flow.EventPhotos()).To(BeEmpty())
			g.Expect(flow.Script()).To(BeEmpty())
			g.Expect(flow.Editing()).To(BeFalse())
			_, hasPending := flow.Pending()
			g.Expect(hasPending).To(BeFalse())
			g.Expect(released).To(ConsistOf("me.jpg", "a.jpg", "b.jpg", "c.jpg"))
		})
	}
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()

	var changes []recreate.Change
	unsubscribe := flow.Subscribe(func(c recreate.Change) {
		changes = append(changes, c)
	})

	flow.SetDescription("Graduation")
	flow.UploadSubjectPhoto(photo("me.jpg"))
	flow.AddEventPhotos([]recreate.UploadedImage{photo("a.jpg")})
	gen, _ := flow.RequestGenerate()
	flow.CompleteGeneration(gen)

	g.Expect(changes).To(Equal([]recreate.Change{
		{Op: recreate.OpDescription, From: recreate.ScreenInput, To: recreate.ScreenInput},
		{Op: recreate.OpSubject, From: recreate.ScreenInput, To: recreate.ScreenInput},
		{Op: recreate.OpEvents, From: recreate.ScreenInput, To: recreate.ScreenInput},
		{Op: recreate.OpGenerate, From: recreate.ScreenInput, To: recreate.ScreenLoading},
		{Op: recreate.OpComplete, From: recreate.ScreenLoading, To: recreate.ScreenScriptReview},
	}))

	unsubscribe()
	flow.Restart()
	g.Expect(changes).To(HaveLen(5))
}

func TestSetDescriptionSameValueDoesNotPublish(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	flow := recreate.New()
	count := 0
	flow.Subscribe(func(recreate.Change) { count++ })

	flow.SetDescription("Picnic")
	flow.SetDescription("Picnic")

	g.Expect(count).To(Equal(1))
}
