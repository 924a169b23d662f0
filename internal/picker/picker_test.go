package picker_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/joe/event-recreator/internal/picker"
)

func TestDisabledReportsUnavailable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var p picker.Picker = picker.Disabled{}

	_, err := p.PickSubject(context.Background())
	g.Expect(err).To(MatchError(picker.ErrUnavailable))

	paths, err := p.PickEvents(context.Background())
	g.Expect(err).To(MatchError(picker.ErrUnavailable))
	g.Expect(paths).To(BeEmpty())
}

func TestDialogImplementsPicker(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var p picker.Picker = picker.NewDialog()

	g.Expect(p).NotTo(BeNil())
	g.Expect(picker.ImagePatterns).To(ContainElements("*.jpg", "*.png", "*.heic"))
}
