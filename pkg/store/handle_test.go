package store_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tridentsearch/trident/pkg/store"
	"github.com/tridentsearch/trident/pkg/store/inmemory"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

// closeTracker wraps a driver and records when it is closed.
type closeTracker struct {
	store.Driver
	closed bool
}

func (c *closeTracker) Close(ctx context.Context) error {
	c.closed = true
	return c.Driver.Close(ctx)
}

var _ = Describe("Handle", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("hands out the currently bound driver", func() {
		first := inmemory.NewDriver()
		handle := store.NewHandle(first)

		drv, release := handle.Acquire()
		defer release()
		Expect(drv).To(BeIdenticalTo(first))
	})

	It("closes the old driver on swap", func() {
		old := &closeTracker{Driver: inmemory.NewDriver()}
		handle := store.NewHandle(old)

		Expect(handle.Swap(ctx, inmemory.NewDriver())).To(Succeed())
		Expect(old.closed).To(BeTrue())
	})

	It("waits for checked-out drivers before swapping", func() {
		old := &closeTracker{Driver: inmemory.NewDriver()}
		handle := store.NewHandle(old)

		_, release := handle.Acquire()

		swapped := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			Expect(handle.Swap(ctx, inmemory.NewDriver())).To(Succeed())
			close(swapped)
		}()

		// The in-flight acquisition keeps the old driver valid.
		Consistently(swapped).ShouldNot(BeClosed())
		Expect(old.closed).To(BeFalse())

		release()
		Eventually(swapped).Should(BeClosed())
		Expect(old.closed).To(BeTrue())
	})

	It("routes new acquisitions to the new driver after swap", func() {
		handle := store.NewHandle(inmemory.NewDriver())
		replacement := inmemory.NewDriver()

		Expect(handle.Swap(ctx, replacement)).To(Succeed())

		drv, release := handle.Acquire()
		defer release()
		Expect(drv).To(BeIdenticalTo(replacement))
	})
})
