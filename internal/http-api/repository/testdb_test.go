package repository

import (
	"fmt"
	"testing"

	"bookhub/internal/http-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Theme{},
		&models.ThemeAssociation{},
		&models.ReadingProgress{},
		&models.CompletedReading{},
		&models.Rating{},
		&models.List{},
		&models.ListItem{},
		&models.HighlightedFragment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{Email: email, Name: name}).Error)
}

func seedBook(t *testing.T, db *gorm.DB, link, title string, pages int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Book{Link: link, Title: title, PageCount: pages}).Error)
}

func seedTheme(t *testing.T, db *gorm.DB, bookLink, theme string) {
	t.Helper()
	db.Create(&models.Theme{Name: theme}) // may already exist
	require.NoError(t, db.Create(&models.ThemeAssociation{BookLink: bookLink, Theme: theme}).Error)
}
