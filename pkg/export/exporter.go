package export

// Dataset defines tabular export content.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Exporter renders a Dataset into a concrete encoding.
type Exporter interface {
	Render(data Dataset) ([]byte, error)
	ContentType() string
}
