package models

// Page holds the text content of a single PDF page. Number is 1-based
// and follows the document's page order. Lines are in reading order as
// delivered by the extraction engine; blank pages have an empty slice.
type Page struct {
	Number int
	Lines  []string
}

// Lines flattens pages into a single slice of lines in document order.
func Lines(pages []Page) []string {
	var out []string
	for _, page := range pages {
		out = append(out, page.Lines...)
	}
	return out
}
