package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("handleSeed", func() {
	Context("in a production deployment", func() {
		It("returns 403 without touching the store", func() {
			h := newTestHarness(Config{ListenAddr: ":0", Environment: EnvProduction})

			resp := h.post("/api/seed", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

			var envelope ErrorResponse
			decodeBody(resp, &envelope)
			Expect(envelope.Error).To(Equal("Seeding disabled in production"))
		})
	})

	Context("in a development deployment", func() {
		var h *testHarness

		BeforeEach(func() {
			h = newTestHarness(Config{ListenAddr: ":0", Environment: "development"})
		})

		It("clears and repopulates the store with the sample set", func() {
			resp := h.post("/api/seed", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out struct {
				Message string `json:"message"`
				Count   int    `json:"count"`
			}
			decodeBody(resp, &out)
			Expect(out.Message).To(Equal("Database seeded successfully"))
			Expect(out.Count).To(Equal(4))

			categories, err := h.driver.Categories(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(ConsistOf("Customer", "Employee", "Order"))
		})

		It("is repeatable without duplicating records", func() {
			h.post("/api/seed", nil)
			resp := h.post("/api/seed", nil)

			var out struct {
				Count int `json:"count"`
			}
			decodeBody(resp, &out)
			Expect(out.Count).To(Equal(4))
		})
	})
})
