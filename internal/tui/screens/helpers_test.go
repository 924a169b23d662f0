package screens_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/joe/event-recreator/internal/clipboard"
	"github.com/joe/event-recreator/internal/picker"
	"github.com/joe/event-recreator/internal/preview"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/internal/tui/shared"
	"github.com/joe/event-recreator/pkg/imagefile"
)

//nolint:gochecknoglobals // fixed clock for generation requests
var requestedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stubLoader struct {
	batch imagefile.Batch
}

func (s stubLoader) Load(context.Context, ...string) imagefile.Batch {
	return s.batch
}

func photo(name string) imagefile.Image {
	return imagefile.Image{Name: name, Source: "/photos/" + name, ContentType: "image/jpeg"}
}

func newSession(loader shared.PhotoLoader) *shared.Session {
	return &shared.Session{
		Ctx:      context.Background(),
		Flow:     recreate.New(recreate.WithClock(func() time.Time { return requestedAt })),
		Loader:   loader,
		Previews: preview.NewRegistry(),
		Picker:   picker.Disabled{},
		Copier:   &clipboard.Memory{},
		Log:      zerolog.Nop(),
	}
}

func uploaded(session *shared.Session, name string) recreate.UploadedImage {
	img := photo(name)

	return recreate.UploadedImage{Image: img, Preview: session.Previews.Register(img)}
}

// readySession has every input needed to generate
func readySession() *shared.Session {
	session := newSession(stubLoader{})
	session.Flow.SetDescription("Beach day")
	session.Flow.UploadSubjectPhoto(uploaded(session, "me.jpg"))
	session.Flow.AddEventPhotos([]recreate.UploadedImage{uploaded(session, "a.jpg"), uploaded(session, "b.jpg")})

	return session
}

// reviewSession is at the script review screen
func reviewSession() *shared.Session {
	session := readySession()
	gen, _ := session.Flow.RequestGenerate()
	session.Flow.CompleteGeneration(gen)

	return session
}
