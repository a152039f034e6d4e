package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const invoiceText = "Proforma Invoice\nPI No : PI-100\nDate : 12/03/2024\nNet Value : TSH 100,000.00\n"

// stubRunner scripts the external binaries per command name. The pdftoppm
// stub writes page images so the glob in the OCR fallback finds them.
type stubRunner struct {
	pdftotextOut string
	pdftotextErr error
	pdftoppmErr  error
	renderPages  int
	tesseractOut string
	tesseractErr error

	calls []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch name {
	case "pdftotext":
		return []byte(s.pdftotextOut), nil, s.pdftotextErr
	case "pdftoppm":
		if s.pdftoppmErr != nil {
			return nil, []byte("pdftoppm boom"), s.pdftoppmErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= s.renderPages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(s.tesseractOut), nil, s.tesseractErr
	default:
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

var _ = Describe("Extractor", func() {
	var (
		stub      *stubRunner
		extractor *Extractor
		ctx       context.Context
	)

	BeforeEach(func() {
		stub = &stubRunner{}
		extractor = NewExtractor(Config{}, nil).WithRunner(stub)
		ctx = context.Background()
	})

	When("a PDF carries embedded text", func() {
		var res Result

		BeforeEach(func() {
			stub.pdftotextOut = invoiceText
			var err error
			res, err = extractor.Extract(ctx, "invoice.pdf")
			Expect(err).NotTo(HaveOccurred())
		})

		It("uses the pdf-text method at full confidence", func() {
			Expect(res.Method).To(Equal("pdf-text"))
			Expect(res.SourceType).To(Equal("PDF"))
			Expect(res.Confidence).To(BeNumerically("==", 1.0))
		})

		It("splits the text into pages of lines", func() {
			Expect(res.Pages).To(HaveLen(1))
			Expect(res.Pages[0].Lines[0]).To(Equal("Proforma Invoice"))
		})

		It("never invokes the OCR toolchain", func() {
			Expect(stub.calls).To(Equal([]string{"pdftotext"}))
		})
	})

	When("a PDF has no embedded text", func() {
		var res Result

		BeforeEach(func() {
			stub.pdftotextOut = "  \n "
			stub.renderPages = 2
			stub.tesseractOut = "PI No : PI-100\nNet Value : TSH 100,000.00"
			var err error
			res, err = extractor.Extract(ctx, "scan.pdf")
			Expect(err).NotTo(HaveOccurred())
		})

		It("falls back to rasterize-and-OCR", func() {
			Expect(res.Method).To(Equal("pdf-ocr"))
			Expect(stub.calls).To(Equal([]string{"pdftotext", "pdftoppm", "tesseract", "tesseract"}))
		})

		It("counts the rendered pages", func() {
			Expect(res.PageCount).To(Equal(2))
		})

		It("reports a heuristic confidence below certainty", func() {
			Expect(res.Confidence).To(BeNumerically(">", 0.2))
			Expect(res.Confidence).To(BeNumerically("<", 1.0))
			Expect(res.Language).To(Equal("eng"))
		})
	})

	When("rasterization fails", func() {
		It("returns the error with the tool's stderr as a warning", func() {
			stub.pdftotextOut = ""
			stub.pdftoppmErr = errors.New("exit status 1")
			_, err := extractor.Extract(ctx, "scan.pdf")
			Expect(err).To(HaveOccurred())
		})
	})

	When("the input is an image", func() {
		It("runs OCR directly", func() {
			stub.tesseractOut = invoiceText
			res, err := extractor.Extract(ctx, "scan.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal("image-ocr"))
			Expect(res.SourceType).To(Equal("IMAGE"))
			Expect(res.PageCount).To(Equal(1))
			Expect(stub.calls).To(Equal([]string{"tesseract"}))
		})
	})

	When("the input is a plain text file", func() {
		It("reads it without running any tools", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "invoice.txt")
			Expect(os.WriteFile(path, []byte(invoiceText), 0o644)).To(Succeed())

			res, err := extractor.Extract(ctx, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Method).To(Equal("plain-text"))
			Expect(res.SourceType).To(Equal("TXT"))
			Expect(res.Confidence).To(BeNumerically("==", 1.0))
			Expect(res.Pages).To(HaveLen(1))
			Expect(stub.calls).To(BeEmpty())
		})
	})

	When("the extension is not supported", func() {
		It("rejects the file", func() {
			_, err := extractor.Extract(ctx, "invoice.docx")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unsupported extension"))
		})
	})
})

var _ = Describe("normalize", func() {
	It("converts Windows line endings and strips control noise", func() {
		out := normalize("a\r\nb\rc\x00d\te")
		Expect(out).To(Equal("a\nb\nc" + "d\te"))
	})
})

var _ = Describe("heuristicConfidence", func() {
	It("scores bare noise at the base rate", func() {
		Expect(heuristicConfidence("zzzz")).To(BeNumerically("~", 0.2, 0.001))
	})

	It("rewards invoice-like artifacts", func() {
		withArtifacts := heuristicConfidence("Proforma Invoice 12/03/2024 TSH 1,000.00")
		Expect(withArtifacts).To(BeNumerically(">", heuristicConfidence("plain words only")))
	})

	It("caps the score at 1.0", func() {
		long := "Proforma Invoice 12/03/2024 TSH 1,000.00 " + strings.Repeat("x", 200)
		Expect(heuristicConfidence(long)).To(BeNumerically("<=", 1.0))
	})
})
