package api

import (
	"context"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tridentsearch/trident/pkg/store"
	"github.com/tridentsearch/trident/pkg/store/inmemory"
)

var _ = Describe("handleConnect", func() {
	var h *testHarness

	BeforeEach(func() {
		h = newTestHarness(Config{ListenAddr: ":0"})
	})

	Context("when the uri field is missing", func() {
		It("returns 400", func() {
			resp := h.post("/api/connect", map[string]any{})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

			var envelope ErrorResponse
			decodeBody(resp, &envelope)
			Expect(envelope.Error).To(Equal("URI is required"))
			Expect(h.dialed).To(BeEmpty())
		})
	})

	Context("when dialing the new target fails", func() {
		BeforeEach(func() {
			h.dialErr = errors.New("no reachable servers")
		})

		It("returns 500 with the underlying error message", func() {
			resp := h.post("/api/connect", map[string]any{"uri": "mongodb://bad-host:27017"})
			Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))

			var envelope ErrorResponse
			decodeBody(resp, &envelope)
			Expect(envelope.Error).To(ContainSubstring("Connection failed"))
			Expect(envelope.Error).To(ContainSubstring("no reachable servers"))
		})

		It("leaves the previous binding in place", func() {
			Expect(h.driver.InsertMany(context.Background(), []store.Record{
				{RecordType: "Employee", Attributes: map[string]any{"name": "A"}},
			})).To(Succeed())

			h.post("/api/connect", map[string]any{"uri": "mongodb://bad-host:27017"})

			resp := h.get("/api/categories")
			var out struct {
				Categories []string `json:"categories"`
			}
			decodeBody(resp, &out)
			Expect(out.Categories).To(ConsistOf("Employee"))
		})
	})

	Context("when dialing succeeds", func() {
		var replacement *inmemory.Driver

		BeforeEach(func() {
			replacement = inmemory.NewDriver()
			Expect(replacement.InsertMany(context.Background(), []store.Record{
				{RecordType: "Invoice", Attributes: map[string]any{"amount": 12}},
			})).To(Succeed())
			h.dialDriver = replacement
		})

		It("rebinds the store and confirms", func() {
			resp := h.post("/api/connect", map[string]any{"uri": "mongodb://new-host:27017/other"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out struct {
				Message string `json:"message"`
			}
			decodeBody(resp, &out)
			Expect(out.Message).To(Equal("Database connected successfully"))
			Expect(h.dialed).To(ConsistOf("mongodb://new-host:27017/other"))
		})

		It("routes subsequent requests to the new target", func() {
			h.post("/api/connect", map[string]any{"uri": "mongodb://new-host:27017/other"})

			resp := h.get("/api/categories")
			var out struct {
				Categories []string `json:"categories"`
			}
			decodeBody(resp, &out)
			Expect(out.Categories).To(ConsistOf("Invoice"))
		})
	})
})
