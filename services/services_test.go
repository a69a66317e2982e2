package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ALjabriOmars/SCSP/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory SQLite database so that every test gets
// its own isolated schema while gorm's connection pool still sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Issue{}, &entity.Task{}, &entity.Bid{},
	))
	return db
}
