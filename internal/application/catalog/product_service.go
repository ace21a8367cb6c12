package catalog

import (
	"context"

	"github.com/fashionstop/storefront/internal/domain/catalog"
	"github.com/fashionstop/storefront/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns the products matching the filter, newest first
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "list",
		attribute.String("filter.brand", filter.Brand),
		attribute.String("filter.category", filter.Category),
	)
	defer span.End()

	products, err := s.productRepo.FindAll(ctx, catalog.ProductFilter{
		Brand:    filter.Brand,
		Featured: filter.Featured,
		Category: filter.Category,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return ToProductResponses(products), nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "create",
		attribute.String("product.brand", req.Brand),
	)
	defer span.End()

	product, err := catalog.NewProduct(s.productRepo.NextID(), req.toInput())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("brand", product.Brand),
	)
	telemetry.SetOK(span)
	response := ToProductResponse(product)
	return &response, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "update",
		attribute.String("product.id", id),
	)
	defer span.End()

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := product.Apply(req.toPatch()); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetOK(span)
	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Unknown ids yield shared.ErrNotFound.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "delete",
		attribute.String("product.id", id),
	)
	defer span.End()

	if err := s.productRepo.Delete(ctx, id); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id))
	telemetry.SetOK(span)
	return nil
}

// Count returns the number of products in the catalog
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.productRepo.Count(ctx)
}
