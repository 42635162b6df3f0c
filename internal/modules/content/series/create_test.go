package series

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockedService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
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
	return NewService(db), mock
}

// A writer that passes the pre-insert count but loses the insert race still
// gets the conflict error, not the raw driver error.
func TestCreateMapsDuplicateInsertToConflict(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `series`").
		WillReturnError(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := svc.Create(&CreateSeriesDTO{Name: "Go Deep Dives"})
	if err == nil || err.Error() != "slug already exists" {
		t.Errorf("Create err = %v, want slug already exists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected queries: %v", err)
	}
}

func TestCreateSurfacesCountError(t *testing.T) {
	svc, mock := newMockedService(t)
	mock.ExpectQuery("SELECT count").WillReturnError(sqlmock.ErrCancelled)

	if _, err := svc.Create(&CreateSeriesDTO{Name: "Go Deep Dives"}); err == nil {
		t.Error("Create should surface a failed uniqueness check")
	}
}
