package textutil_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kgeorge/pdflines/pkg/textutil"
)

var _ = Describe("Normalize", func() {
	DescribeTable("cleanup of extracted lines",
		func(in, expected string) {
			Expect(textutil.Normalize(in)).To(Equal(expected))
		},
		Entry("plain text untouched", "MAWB 176-12345678", "MAWB 176-12345678"),
		Entry("non-breaking space", "TOTAL\u00a0273.52", "TOTAL 273.52"),
		Entry("zero-width space removed", "176\u200b-12345678", "176-12345678"),
		Entry("byte order mark removed", "\ufeffTOTAL", "TOTAL"),
		Entry("en dash becomes hyphen", "176\u201312345678", "176-12345678"),
		Entry("em dash becomes hyphen", "176\u201412345678", "176-12345678"),
		Entry("minus sign becomes hyphen", "176\u221212345678", "176-12345678"),
		Entry("whitespace collapsed", "  a \t b\t\tc  ", "a b c"),
		Entry("empty string", "", ""),
		Entry("whitespace only", " \t ", ""),
	)
})
