package export

import (
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
)

// txtDelimiter separates article blocks in the TXT export.
const txtDelimiter = "--------------------------------------------------"

// TXT renders the collection as a human-readable plain text document: a UTF-8
// BOM, then one labelled block per article separated by a delimiter line.
// Labels and the yes/no token follow the product's Arabic locale.
func TXT(articles []*entity.Article) string {
	var sb strings.Builder
	sb.WriteString(utf8BOM)
	for _, a := range articles {
		fmt.Fprintf(&sb, "العنوان: %s\n", a.Title)
		fmt.Fprintf(&sb, "الفئة: %s\n", a.Category)
		fmt.Fprintf(&sb, "تاريخ النشر: %s\n", a.PublishedAt.UTC().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&sb, "المشاهدات: %d\n", a.Views)
		fmt.Fprintf(&sb, "عاجل: %s\n", yesNo(a.IsUrgent))
		fmt.Fprintf(&sb, "المحتوى: %s\n", a.Content)
		fmt.Fprintf(&sb, "رابط الصورة: %s\n", a.ImageURL)
		sb.WriteString(txtDelimiter + "\n\n")
	}
	return sb.String()
}
