package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kgeorge/pdflines/pkg/models"
)

var _ = Describe("Lines", func() {
	It("flattens pages in document order", func() {
		pages := []models.Page{
			{Number: 1, Lines: []string{"a", "b"}},
			{Number: 2, Lines: nil},
			{Number: 3, Lines: []string{"c"}},
		}
		Expect(models.Lines(pages)).To(Equal([]string{"a", "b", "c"}))
	})

	It("returns nil for no pages", func() {
		Expect(models.Lines(nil)).To(BeNil())
	})
})
