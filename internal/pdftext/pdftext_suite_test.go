package pdftext

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPdftext(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pdftext Suite")
}
