package export

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
)

// csvColumns is the fixed CSV column order.
var csvColumns = []string{"id", "title", "category", "publishedAt", "views", "isUrgent", "content", "imageUrl"}

// CSV renders the collection as a CSV document: a UTF-8 BOM, the header row,
// then one row per article. PublishedAt is rendered as an ISO-8601 string and
// isUrgent as the localized yes/no token. Field quoting follows the standard
// CSV rules via encoding/csv.
func CSV(articles []*entity.Article) string {
	var sb strings.Builder
	sb.WriteString(utf8BOM)

	w := csv.NewWriter(&sb)
	_ = w.Write(csvColumns)
	for _, a := range articles {
		_ = w.Write([]string{
			strconv.FormatInt(a.ID, 10),
			a.Title,
			a.Category,
			a.PublishedAt.UTC().Format(time.RFC3339),
			strconv.FormatInt(a.Views, 10),
			yesNo(a.IsUrgent),
			a.Content,
			a.ImageURL,
		})
	}
	w.Flush()

	return sb.String()
}
