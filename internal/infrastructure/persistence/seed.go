package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/domain/identity"
	"github.com/fashionstop/storefront/internal/domain/shared"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultProducts returns the catalog created on first start
func DefaultProducts() []catalog.ProductInput {
	sizes := []string{"7", "8", "9", "10", "11"}
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	original := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []catalog.ProductInput{
		{
			Name:          "Air Max 270",
			Brand:         "Nike",
			Price:         price(1999),
			OriginalPrice: original(8999),
			Image:         "https://static.nike.com/a/images/t_PDP_1280_v1/f_auto,q_auto:eco/skwgyqrbfzhu6uyeh0gg/air-max-270-mens-shoes-KkLcGR.png",
			Badge:         "BESTSELLER",
			Description:   "Premium Nike Air Max 270 with maximum comfort and style",
			Sizes:         sizes,
			Colors:        []string{"Black", "White", "Blue"},
			Featured:      true,
		},
		{
			Name:          "Air Force 1",
			Brand:         "Nike",
			Price:         price(1999),
			OriginalPrice: original(7999),
			Image:         "https://static.nike.com/a/images/t_PDP_1280_v1/f_auto,q_auto:eco/b7d9211c-26e7-431a-ac24-b0540fb3c00f/air-force-1-07-mens-shoes-jBrhbr.png",
			Badge:         "NEW",
			Description:   "Classic Nike Air Force 1 - timeless design",
			Sizes:         sizes,
			Colors:        []string{"White", "Black"},
			Featured:      true,
		},
		{
			Name:          "Ultraboost 22",
			Brand:         "Adidas",
			Price:         price(2499),
			OriginalPrice: original(9999),
			Image:         "https://assets.adidas.com/images/h_840,f_auto,q_auto,fl_lossy,c_fill,g_auto/fbaf991a78bc4896a3e9ad7800abcec6_9366/Ultraboost_22_Shoes_Black_GZ0127_01_standard.jpg",
			Badge:         "HOT",
			Description:   "Adidas Ultraboost 22 - Ultimate energy return",
			Sizes:         sizes,
			Colors:        []string{"Black", "White", "Blue"},
			Featured:      true,
		},
		{
			Name:          "Suede Classic",
			Brand:         "Puma",
			Price:         price(1799),
			OriginalPrice: original(6999),
			Image:         "https://images.puma.com/image/upload/f_auto,q_auto,b_rgb:fafafa,w_2000,h_2000/global/374915/25/sv01/fnd/IND/fmt/png/Suede-Classic-XXI-Sneakers",
			Badge:         "CLASSIC",
			Description:   "Puma Suede Classic - Timeless street style",
			Sizes:         sizes,
			Colors:        []string{"Red", "Blue", "Black"},
			Featured:      false,
		},
	}
}

// Seed creates the configured admin account when it does not exist and the
// default products when the catalog is empty.
func Seed(ctx context.Context, store Store, admin config.AdminConfig, log *zap.Logger) error {
	if err := seedAdmin(ctx, store.Admins(), admin, log); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if err := seedProducts(ctx, store.Products(), log); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, repo identity.AdminRepository, cfg config.AdminConfig, log *zap.Logger) error {
	_, err := repo.FindByUsername(ctx, cfg.Username)
	if err == nil {
		log.Info("Default admin already exists", zap.String("username", cfg.Username))
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	admin, err := identity.NewAdmin(cfg.Username, cfg.Password)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, admin); err != nil {
		return err
	}
	log.Info("Default admin created", zap.String("username", admin.Username))
	return nil
}

func seedProducts(ctx context.Context, repo catalog.ProductRepository, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Products already exist", zap.Int64("count", count))
		return nil
	}

	defaults := DefaultProducts()
	for _, in := range defaults {
		p, err := catalog.NewProduct(repo.NextID(), in)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, p); err != nil {
			return err
		}
	}
	log.Info("Default products initialized", zap.Int("count", len(defaults)))
	return nil
}
