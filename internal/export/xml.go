package export

import (
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
)

// XML renders the collection as an <articles> document with one <article>
// element per record. Text fields are entity-escaped; isUrgent is the literal
// true/false.
func XML(articles []*entity.Article) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<articles>\n")
	for _, a := range articles {
		sb.WriteString("  <article>\n")
		fmt.Fprintf(&sb, "    <id>%d</id>\n", a.ID)
		fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(a.Title))
		fmt.Fprintf(&sb, "    <content>%s</content>\n", escapeXML(a.Content))
		fmt.Fprintf(&sb, "    <category>%s</category>\n", escapeXML(a.Category))
		fmt.Fprintf(&sb, "    <publishedAt>%s</publishedAt>\n", a.PublishedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(&sb, "    <views>%d</views>\n", a.Views)
		fmt.Fprintf(&sb, "    <isUrgent>%t</isUrgent>\n", a.IsUrgent)
		fmt.Fprintf(&sb, "    <imageUrl>%s</imageUrl>\n", escapeXML(a.ImageURL))
		sb.WriteString("  </article>\n")
	}
	sb.WriteString("</articles>")
	return sb.String()
}
