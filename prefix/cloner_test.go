package prefix_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brewgate/brewgate/prefix"
	"github.com/brewgate/brewgate/prefix/prefixfakes"
)

var _ = Describe("Cloner", func() {
	var (
		fakeExecutor *prefixfakes.FakeExecutor
		cloner       *prefix.Cloner
		logger       lager.Logger
	)

	BeforeEach(func() {
		fakeExecutor = new(prefixfakes.FakeExecutor)
		cloner = prefix.NewCloner("custom-git", "https://example.com/pkg/manager", "/opt/manager", fakeExecutor)
		logger = lagertest.NewTestLogger("cloner")
	})

	It("checks the repository out into the home directory through the sandbox", func() {
		Expect(cloner.Clone(logger)).To(Succeed())

		Expect(fakeExecutor.RunSandboxedCallCount()).To(Equal(1))
		_, args := fakeExecutor.RunSandboxedArgsForCall(0)
		Expect(args).To(Equal([]string{"custom-git", "clone", "https://example.com/pkg/manager", "/opt/manager"}))
	})

	Context("when the sandboxed clone fails", func() {
		BeforeEach(func() {
			fakeExecutor.RunSandboxedReturns(errors.New("network unreachable"))
		})

		It("returns the error", func() {
			err := cloner.Clone(logger)

			Expect(err).To(MatchError(ContainSubstring("cloning repository")))
			Expect(err).To(MatchError(ContainSubstring("network unreachable")))
		})
	})
})
