package persistence

import (
	"testing"
	"time"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the application schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestProduct(t *testing.T, id, brand string, createdAt time.Time) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, catalog.ProductInput{
		Name:   brand + " runner " + id,
		Brand:  brand,
		Price:  decimal.RequireFromString("1999.50"),
		Image:  "https://img.example/" + id + ".png",
		Sizes:  []string{"8", "9"},
		Colors: []string{"Black"},
	})
	require.NoError(t, err)
	p.CreatedAt = createdAt
	p.UpdatedAt = createdAt
	return p
}
