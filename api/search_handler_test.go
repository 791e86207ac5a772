package api

import (
	"context"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tridentsearch/trident/api/search"
	"github.com/tridentsearch/trident/pkg/seed"
)

var _ = Describe("handleSearch", func() {
	var h *testHarness

	BeforeEach(func() {
		h = newTestHarness(Config{ListenAddr: ":0"})
	})

	Context("when the text field is missing", func() {
		It("returns 400 before any tier executes", func() {
			resp := h.post("/api/search", map[string]any{})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))

			var envelope ErrorResponse
			decodeBody(resp, &envelope)
			Expect(envelope.Error).To(Equal("Query text is required"))
			Expect(h.translator.Calls).To(BeEmpty())
		})
	})

	Context("when the text field is empty", func() {
		It("returns 400", func() {
			resp := h.post("/api/search", map[string]any{"text": ""})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("when the text field is only whitespace", func() {
		It("returns 400", func() {
			resp := h.post("/api/search", map[string]any{"text": "   "})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("when the body is not JSON", func() {
		It("returns 400", func() {
			req, err := http.NewRequest(http.MethodPost, "/api/search", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := h.server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("searching the seeded sample set with both services down", func() {
		BeforeEach(func() {
			_, err := seed.Seed(context.Background(), h.driver, h.embedder, h.server.logger)
			Expect(err).NotTo(HaveOccurred())

			h.translator.Err = errors.New("service unreachable")
			h.embedder.Err = errors.New("service unreachable")
		})

		It("finds Dr. Sarah Chen for 'quantum' via the fuzzy tier", func() {
			resp := h.post("/api/search", map[string]any{"text": "quantum"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var output struct {
				Count        int              `json:"count"`
				Query        string           `json:"query"`
				Method       string           `json:"method"`
				GeneratedMQL map[string]any   `json:"generatedMql"`
				Suggestion   *string          `json:"suggestion"`
				Results      []map[string]any `json:"results"`
			}
			decodeBody(resp, &output)

			Expect(output.Count).To(Equal(1))
			Expect(output.Query).To(Equal("quantum"))
			Expect(output.Method).To(Equal(search.MethodFuzzy))
			Expect(output.GeneratedMQL).To(BeNil())
			Expect(output.Suggestion).To(BeNil())
			Expect(output.Results[0]).To(HaveKeyWithValue("name", "Dr. Sarah Chen"))
		})

		It("returns a suggestion when nothing matches", func() {
			resp := h.post("/api/search", map[string]any{"text": "zzz-no-such-thing"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var output struct {
				Count      int              `json:"count"`
				Suggestion *string          `json:"suggestion"`
				Results    []map[string]any `json:"results"`
			}
			decodeBody(resp, &output)

			Expect(output.Count).To(Equal(0))
			Expect(output.Results).To(BeEmpty())
			Expect(output.Suggestion).NotTo(BeNil())
			Expect(*output.Suggestion).To(ContainSubstring("No matches found."))
		})
	})

	Context("when the structured tier wins", func() {
		BeforeEach(func() {
			_, err := seed.Seed(context.Background(), h.driver, h.embedder, h.server.logger)
			Expect(err).NotTo(HaveOccurred())

			h.translator.MQL = map[string]any{"attributes.department": "Sales"}
		})

		It("echoes the generated query in the envelope", func() {
			resp := h.post("/api/search", map[string]any{"text": "sales employees"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var output struct {
				Method       string         `json:"method"`
				GeneratedMQL map[string]any `json:"generatedMql"`
			}
			decodeBody(resp, &output)

			Expect(output.Method).To(Equal(search.MethodStructured))
			Expect(output.GeneratedMQL).To(HaveKeyWithValue("attributes.department", "Sales"))
		})
	})
})
