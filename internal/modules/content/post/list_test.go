package post

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/modules/content/series"
	"github.com/misterbista/portfolio-api/internal/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockedService backs a Service with a sqlmock connection. The permissive
// matcher records every statement so tests can assert on the generated SQL;
// expectations still consume queries in order.
func newMockedService(t *testing.T) (*Service, sqlmock.Sqlmock, *[]string) {
	t.Helper()

	var statements []string
	recorder := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		statements = append(statements, actualSQL)
		return nil
	})

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return NewService(db, nil), mock, &statements
}

func TestListUnknownCategoryYieldsEmptyPage(t *testing.T) {
	svc, mock, _ := newMockedService(t)

	// The slug resolves to nothing, so the posts query never runs.
	mock.ExpectQuery("categories").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q := pagination.Query{Page: 1, Size: pagination.PageSize}
	posts, pag, err := svc.List(q, ListQuery{Category: "no-such-category"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
	if pag.Total != 0 || pag.TotalPage != 0 || pag.HasNextPage {
		t.Errorf("pagination = %+v, want empty meta", pag)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestListTagWithNoPostsYieldsEmptyPage(t *testing.T) {
	svc, mock, _ := newMockedService(t)

	mock.ExpectQuery("tags").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))
	mock.ExpectQuery("post_tags").
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}))

	q := pagination.Query{Page: 1, Size: pagination.PageSize}
	posts, pag, err := svc.List(q, ListQuery{Tag: "lonely-tag"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 || pag.Total != 0 || pag.TotalPage != 0 {
		t.Errorf("got %d posts, pagination %+v, want empty page", len(posts), pag)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestListUnknownTagYieldsEmptyPage(t *testing.T) {
	svc, mock, _ := newMockedService(t)

	mock.ExpectQuery("tags").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q := pagination.Query{Page: 1, Size: pagination.PageSize}
	posts, pag, err := svc.List(q, ListQuery{Tag: "no-such-tag"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 || pag.Total != 0 {
		t.Errorf("got %d posts, total %d, want empty page", len(posts), pag.Total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestListSearchMatchesTitleAndExcerptOnly(t *testing.T) {
	svc, mock, statements := newMockedService(t)

	mock.ExpectQuery("count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("posts").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	q := pagination.Query{Page: 1, Size: pagination.PageSize}
	if _, _, err := svc.List(q, ListQuery{Search: "gopher"}); err != nil {
		t.Fatalf("List: %v", err)
	}

	all := strings.Join(*statements, "\n")
	if !strings.Contains(all, "posts.title LIKE") || !strings.Contains(all, "posts.excerpt LIKE") {
		t.Errorf("search should filter on title and excerpt, got:\n%s", all)
	}
	if strings.Contains(all, "posts.content LIKE") {
		t.Errorf("search must not scan post bodies, got:\n%s", all)
	}
}

func TestGetBySlugStoreFailureDegradesToNotFound(t *testing.T) {
	svc, mock, _ := newMockedService(t)
	mock.ExpectQuery("posts").WillReturnError(sqlmock.ErrCancelled)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, series.NewService(nil), zap.NewNop())
	h.RegisterRoutes(r.Group("/api/v1"), func(c *gin.Context) { c.Next() })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/posts/broken", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when the store read fails", w.Code)
	}
}
