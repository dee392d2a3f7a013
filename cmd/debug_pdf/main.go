package main

import (
	"fmt"
	"os"

	"github.com/gen2brain/go-fitz"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: debug_pdf file.pdf")
		os.Exit(1)
	}

	pdfPath := os.Args[1]

	doc, err := fitz.New(pdfPath)
	if err != nil {
		fmt.Printf("Error opening PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Printf("File: %s\n", pdfPath)
	fmt.Printf("Pages: %d\n", doc.NumPage())

	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		fmt.Printf("\n=== Page %d ===\n", pageNum+1)

		bounds, err := doc.Bound(pageNum)
		if err == nil {
			fmt.Printf("Dimensions: %.2f x %.2f\n", float64(bounds.Dx()), float64(bounds.Dy()))
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			fmt.Printf("Error extracting text: %v\n", err)
			continue
		}

		fmt.Printf("Raw text:\n%s\n", text)
	}
}
