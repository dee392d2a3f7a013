package pdf

import (
	ledongthuc "github.com/ledongthuc/pdf"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// frag builds a positioned text fragment the way the pure-Go parser
// reports them: one entry per shown glyph run.
func frag(s string, x, y, w float64) ledongthuc.Text {
	return ledongthuc.Text{S: s, X: x, Y: y, W: w, FontSize: 11}
}

var _ = Describe("glyphsToLines", func() {
	It("returns nothing for an empty page", func() {
		Expect(glyphsToLines(nil)).To(BeNil())
	})

	It("keeps fragments of different rows on different lines", func() {
		texts := []ledongthuc.Text{
			frag("MAWB,", 10, 780, 30),
			frag("176-12345678", 40, 780, 70),
			frag("ORIGIN,JFK", 10, 757, 60),
			frag("TOTAL,273.52", 10, 734, 70),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{
			"MAWB,176-12345678",
			"ORIGIN,JFK",
			"TOTAL,273.52",
		}))
	})

	It("restores reading order for fragments delivered bottom-up", func() {
		texts := []ledongthuc.Text{
			frag("TOTAL,273.52", 10, 734, 70),
			frag("176-12345678", 40, 780, 70),
			frag("MAWB,", 10, 780, 30),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{
			"MAWB,176-12345678",
			"TOTAL,273.52",
		}))
	})

	It("separates columns with a space when a horizontal gap exists", func() {
		texts := []ledongthuc.Text{
			frag("PIECES", 10, 700, 35),
			frag("12", 90, 700, 12),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{"PIECES 12"}))
	})

	It("does not invent spaces when the font reports no widths", func() {
		texts := []ledongthuc.Text{
			frag("1", 10, 700, 0),
			frag("7", 16, 700, 0),
			frag("6", 22, 700, 0),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{"176"}))
	})

	It("keeps rows of whitespace glyphs", func() {
		texts := []ledongthuc.Text{
			frag("header", 10, 780, 35),
			frag(" ", 10, 757, 4),
			frag("body", 10, 734, 25),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{"header", " ", "body"}))
	})

	It("keeps glyphs within the line tolerance on one line", func() {
		texts := []ledongthuc.Text{
			frag("273.", 10, 700, 22),
			frag("52", 32, 701.5, 12),
		}
		Expect(glyphsToLines(texts)).To(Equal([]string{"273.52"}))
	})
})
