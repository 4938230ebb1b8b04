package export

import (
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
)

// Download is a fully rendered export: the document body plus the HTTP
// metadata a handler needs to serve it as a file attachment.
type Download struct {
	Content     string
	ContentType string
	Filename    string
}

// Generate renders the collection in the named download format (txt, csv, or
// xml; case-insensitive). Returns ErrUnsupportedFormat for anything else —
// a client error, since the format name comes straight from the request path.
func Generate(format string, articles []*entity.Article) (*Download, error) {
	switch strings.ToLower(format) {
	case "txt":
		return &Download{
			Content:     TXT(articles),
			ContentType: "text/plain; charset=utf-8",
			Filename:    baseFilename + ".txt",
		}, nil
	case "csv":
		return &Download{
			Content:     CSV(articles),
			ContentType: "text/csv; charset=utf-8",
			Filename:    baseFilename + ".csv",
		}, nil
	case "xml":
		return &Download{
			Content:     XML(articles),
			ContentType: "application/xml; charset=utf-8",
			Filename:    baseFilename + ".xml",
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
