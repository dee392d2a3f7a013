package pdf

import (
	"fmt"

	"github.com/kgeorge/pdflines/pkg/logger"
)

// Engine names accepted by NewExtractor.
const (
	EngineFitz   = "fitz"
	EnginePdfcpu = "pdfcpu"
	EnginePure   = "pure"
)

// NewExtractor returns the extraction engine for the given name.
func NewExtractor(engine string, log *logger.Logger) (Extractor, error) {
	switch engine {
	case EngineFitz:
		return NewFitzExtractor(log), nil
	case EnginePdfcpu:
		return NewPdfcpuExtractor(log), nil
	case EnginePure:
		return NewPureExtractor(log), nil
	default:
		return nil, fmt.Errorf("unknown extraction engine %q (want %s, %s or %s)",
			engine, EngineFitz, EnginePdfcpu, EnginePure)
	}
}
