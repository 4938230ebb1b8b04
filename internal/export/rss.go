package export

import (
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
)

// Feed metadata for the RSS channel.
const (
	feedTitle       = "أخبار اليوم"
	feedDescription = "آخر الأخبار من منصة أخبار اليوم"
	feedLanguage    = "ar"
)

// rssTime is the RFC-822 style timestamp RSS 2.0 expects, in UTC.
func rssTime(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
}

// RSS renders the collection as an RSS 2.0 feed. Each article becomes one
// <item> whose link is built from the site URL and the article id; the GUID
// is that link, marked as a non-permalink. now supplies the channel's
// lastBuildDate so output is reproducible in tests.
func RSS(articles []*entity.Article, siteURL string, now time.Time) string {
	siteURL = strings.TrimSuffix(siteURL, "/")

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	sb.WriteString("<rss version=\"2.0\" xmlns:atom=\"http://www.w3.org/2005/Atom\">\n")
	sb.WriteString("<channel>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", feedTitle)
	fmt.Fprintf(&sb, "    <link>%s</link>\n", siteURL)
	fmt.Fprintf(&sb, "    <description>%s</description>\n", feedDescription)
	fmt.Fprintf(&sb, "    <language>%s</language>\n", feedLanguage)
	fmt.Fprintf(&sb, "    <lastBuildDate>%s</lastBuildDate>\n", rssTime(now))
	fmt.Fprintf(&sb, "    <atom:link href=\"%s/feed\" rel=\"self\" type=\"application/rss+xml\" />\n", siteURL)

	for _, a := range articles {
		link := fmt.Sprintf("%s/news/%d", siteURL, a.ID)
		sb.WriteString("    <item>\n")
		fmt.Fprintf(&sb, "        <title>%s</title>\n", escapeXML(a.Title))
		fmt.Fprintf(&sb, "        <link>%s</link>\n", link)
		fmt.Fprintf(&sb, "        <description>%s</description>\n", escapeXML(a.Content))
		fmt.Fprintf(&sb, "        <pubDate>%s</pubDate>\n", rssTime(a.PublishedAt))
		fmt.Fprintf(&sb, "        <guid isPermaLink=\"false\">%s</guid>\n", link)
		sb.WriteString("    </item>\n")
	}

	sb.WriteString("</channel>\n</rss>\n")
	return sb.String()
}
