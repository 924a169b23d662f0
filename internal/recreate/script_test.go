//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package recreate_test

import (
	"strconv"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/event-recreator/internal/recreate"
)

func TestGenerateScriptWithDescription(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	lines := strings.Split(recreate.GenerateScript("  My wedding \n", 3), "\n")

	g.Expect(lines).To(HaveLen(5))
	g.Expect(lines[0]).To(Equal("Recreating: My wedding."))
	g.Expect(lines[1]).To(Equal("Scene 1: A gentle fade-in over 3 captured memories, highlighting authentic emotions."))
	g.Expect(lines[4]).To(HavePrefix("Outro:"))
}

func TestGenerateScriptBlankDescriptionFallsBack(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, description := range []string{"", "   ", "\t\n"} {
		first := strings.SplitN(recreate.GenerateScript(description, 0), "\n", 2)[0]
		g.Expect(first).To(Equal("Recreating your special moment."), "description %q", description)
	}
}

func TestGenerateScriptIsDeterministic(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, n := range []int{0, 1, 2, 17, 1000} {
		g.Expect(recreate.GenerateScript("Concert", n)).To(Equal(recreate.GenerateScript("Concert", n)))
	}
}

func TestGenerateScriptSecondLineCarriesCount(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, n := range []int{0, 1, 9, 42} {
		second := strings.Split(recreate.GenerateScript("Birthday", n), "\n")[1]
		g.Expect(second).To(ContainSubstring(" " + strconv.Itoa(n) + " captured memories"))
	}
}
