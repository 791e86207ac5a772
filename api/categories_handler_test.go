package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tridentsearch/trident/pkg/store"
)

var _ = Describe("handleCategories", func() {
	var h *testHarness

	BeforeEach(func() {
		h = newTestHarness(Config{ListenAddr: ":0"})
	})

	Context("with an empty store", func() {
		It("returns an empty list, not null", func() {
			resp := h.get("/api/categories")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out struct {
				Categories []string `json:"categories"`
			}
			decodeBody(resp, &out)
			Expect(out.Categories).NotTo(BeNil())
			Expect(out.Categories).To(BeEmpty())
		})
	})

	Context("with mixed record types", func() {
		BeforeEach(func() {
			Expect(h.driver.InsertMany(context.Background(), []store.Record{
				{RecordType: "Employee", Attributes: map[string]any{"name": "A"}},
				{RecordType: "Employee", Attributes: map[string]any{"name": "B"}},
				{RecordType: "Order", Attributes: map[string]any{"amount": 1}},
			})).To(Succeed())
		})

		It("returns the distinct set of record types", func() {
			resp := h.get("/api/categories")
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out struct {
				Categories []string `json:"categories"`
			}
			decodeBody(resp, &out)
			Expect(out.Categories).To(ConsistOf("Employee", "Order"))
		})
	})
})
