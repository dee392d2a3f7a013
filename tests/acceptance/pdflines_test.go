package acceptance_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kgeorge/pdflines/internal/config"
	"github.com/kgeorge/pdflines/internal/pdf"
	"github.com/kgeorge/pdflines/internal/tokenizer"
	"github.com/kgeorge/pdflines/pkg/logger"
	"github.com/kgeorge/pdflines/pkg/models"
)

var _ = Describe("pdflines End-to-End", Ordered, func() {
	var (
		testDir string
		pdfPath string
		ctx     context.Context
		log     *logger.Logger
	)

	BeforeAll(func() {
		var err error
		testDir, err = os.MkdirTemp("", "pdflines-acceptance-*")
		Expect(err).NotTo(HaveOccurred())

		pdfPath = generateWaybillPDF(testDir)
	})

	AfterAll(func() {
		err := os.RemoveAll(testDir)
		Expect(err).NotTo(HaveOccurred())
	})

	BeforeEach(func() {
		ctx = context.Background()
		log = logger.New(
			logger.WithOutput(GinkgoWriter),
			logger.WithPrefix("[acceptance] "),
			logger.WithFlags(0),
		)
	})

	It("extracts and tokenizes a waybill document with default configuration", func() {
		cfg := config.Default()

		By("Building the pipeline from defaults")
		extractor, err := pdf.NewExtractor(cfg.Engine, log)
		Expect(err).NotTo(HaveOccurred())

		tok, err := tokenizer.New(cfg.Separators)
		Expect(err).NotTo(HaveOccurred())

		By("Extracting both pages")
		pages, err := extractor.ExtractPages(ctx, pdfPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(HaveLen(2))

		By("Tokenizing every line")
		var tokens []string
		for _, line := range models.Lines(pages) {
			tokens = append(tokens, tok.Tokenize(line)...)
		}

		Expect(tokens).To(ContainElements(
			"MAWB", "176-12345678",
			"ORIGIN", "JFK", "DEST", "FRA",
			"PIECES", "12", "WEIGHT", "340.5",
			"TOTAL", "273.52",
		))

		By("Keeping the waybill number ahead of the total")
		mawbIdx, totalIdx := -1, -1
		for i, token := range tokens {
			if token == "176-12345678" && mawbIdx < 0 {
				mawbIdx = i
			}
			if token == "273.52" {
				totalIdx = i
			}
		}
		Expect(mawbIdx).To(BeNumerically(">=", 0))
		Expect(totalIdx).To(BeNumerically(">", mawbIdx))
	})

	It("produces the same tokens from the pure engine", func() {
		extractor, err := pdf.NewExtractor(pdf.EnginePure, log)
		Expect(err).NotTo(HaveOccurred())

		tok, err := tokenizer.New(tokenizer.DefaultSeparators)
		Expect(err).NotTo(HaveOccurred())

		pages, err := extractor.ExtractPages(ctx, pdfPath)
		Expect(err).NotTo(HaveOccurred())

		var tokens []string
		for _, line := range models.Lines(pages) {
			tokens = append(tokens, tok.Tokenize(line)...)
		}
		Expect(tokens).To(ContainElements("176-12345678", "273.52"))
	})

	It("reports file-not-found for a missing document", func() {
		extractor, err := pdf.NewExtractor(config.Default().Engine, log)
		Expect(err).NotTo(HaveOccurred())

		_, err = extractor.ExtractPages(ctx, filepath.Join(testDir, "absent.pdf"))
		Expect(errors.Is(err, pdf.ErrFileNotFound)).To(BeTrue())
	})

	It("rejects an empty separator configuration before extraction", func() {
		_, err := tokenizer.New("")
		Expect(err).To(MatchError(tokenizer.ErrEmptySeparators))
	})
})
