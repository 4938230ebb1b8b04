// Package fixtures provides reusable test data generators.
// It builds valid article collections so test suites do not each maintain
// their own seed data.
package fixtures

import (
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
)

// Categories used when generating article collections, cycled in order.
var Categories = []string{"محليات", "سياسة", "رياضة", "ثقافة", "اقتصاد"}

// baseTime anchors generated publication dates so collections are
// deterministic across runs.
var baseTime = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

// Article generates a single valid article with the given id. Title, content,
// and category all satisfy the write schema; publication dates step forward
// one day per id so date ordering follows id ordering.
func Article(id int64) *entity.Article {
	category := Categories[int(id-1)%len(Categories)]
	return &entity.Article{
		ID:          id,
		Title:       fmt.Sprintf("عنوان الخبر رقم %d في المجموعة", id),
		Content:     fmt.Sprintf("المحتوى الكامل للخبر رقم %d مع تفاصيل كافية لاجتياز الحد الأدنى للطول", id),
		Category:    category,
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%d/600/400", id),
		ImageHint:   category,
		PublishedAt: baseTime.AddDate(0, 0, int(id-1)),
		Views:       (id * 7) % 100,
		IsUrgent:    id%5 == 0,
	}
}

// Collection generates n valid articles with ids 1..n.
func Collection(n int) []*entity.Article {
	articles := make([]*entity.Article, 0, n)
	for i := 1; i <= n; i++ {
		articles = append(articles, Article(int64(i)))
	}
	return articles
}
