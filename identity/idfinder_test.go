package identity_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brewgate/brewgate/gate"
	"github.com/brewgate/brewgate/identity"
	"github.com/brewgate/brewgate/identity/identityfakes"
)

var _ = Describe("FindUnusedID", func() {
	var fakeResolver *identityfakes.FakeResolver

	BeforeEach(func() {
		fakeResolver = new(identityfakes.FakeResolver)
	})

	It("returns the ceiling when it is free in both id spaces", func() {
		id, err := identity.FindUnusedID(fakeResolver, 500)

		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(500))
	})

	Context("when ids near the ceiling are taken", func() {
		BeforeEach(func() {
			fakeResolver.UserIDExistsStub = func(id int) (bool, error) {
				return id >= 499, nil
			}
			fakeResolver.GroupIDExistsStub = func(id int) (bool, error) {
				return id == 498, nil
			}
		})

		It("returns the highest id free in both id spaces", func() {
			id, err := identity.FindUnusedID(fakeResolver, 500)

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(497))
		})

		It("does not probe the group space for ids taken in the user space", func() {
			_, err := identity.FindUnusedID(fakeResolver, 500)

			Expect(err).NotTo(HaveOccurred())
			Expect(fakeResolver.GroupIDExistsArgsForCall(0)).To(Equal(498))
		})
	})

	Context("when every id at or below the ceiling is taken", func() {
		BeforeEach(func() {
			fakeResolver.UserIDExistsReturns(true, nil)
		})

		It("returns a NoFreeIDErr", func() {
			_, err := identity.FindUnusedID(fakeResolver, 10)

			Expect(err).To(BeAssignableToTypeOf(&gate.NoFreeIDErr{}))
			Expect(err).To(MatchError(ContainSubstring("no unused id found at or below 10")))
			Expect(fakeResolver.UserIDExistsCallCount()).To(Equal(10))
		})
	})

	Context("when the resolver fails", func() {
		BeforeEach(func() {
			fakeResolver.UserIDExistsReturns(false, errors.New("directory unavailable"))
		})

		It("returns the error", func() {
			_, err := identity.FindUnusedID(fakeResolver, 500)

			Expect(err).To(MatchError(ContainSubstring("directory unavailable")))
		})
	})
})
