package httpmsg_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/wasi-qr-router/internal/httpmsg"
)

var _ = Describe("Message", func() {
	Describe("Request.HasBody", func() {
		It("should be false for a nil body", func() {
			Expect(httpmsg.Request{}.HasBody()).To(BeFalse())
		})

		It("should be false for a zero-length body", func() {
			Expect(httpmsg.Request{Body: []byte{}}.HasBody()).To(BeFalse())
		})

		It("should be true for a non-empty body", func() {
			Expect(httpmsg.Request{Body: []byte("{}")}.HasBody()).To(BeTrue())
		})
	})

	Describe("Empty", func() {
		It("should carry no headers and no body", func() {
			resp := httpmsg.Empty(http.StatusNotFound)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(resp.Headers).To(BeEmpty())
			Expect(resp.Body).To(BeEmpty())
		})
	})

	Describe("Text", func() {
		It("should set the content type and encode the body", func() {
			resp := httpmsg.Text(http.StatusOK, httpmsg.ContentTypeText, "hi")
			Expect(resp.Header(httpmsg.HeaderContentType)).To(Equal("text/plain"))
			Expect(string(resp.Body)).To(Equal("hi"))
		})
	})

	Describe("Bytes", func() {
		It("should keep the body verbatim", func() {
			resp := httpmsg.Bytes(http.StatusOK, httpmsg.ContentTypeOctetStream, []byte{0x1, 0x2})
			Expect(resp.Body).To(Equal([]byte{0x1, 0x2}))
			Expect(resp.Header(httpmsg.HeaderContentType)).To(Equal("application/octet-stream"))
		})
	})
})
