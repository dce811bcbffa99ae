package service

import (
	"context"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/repository"
	infraRepo "github.com/fwahome/dukapos/internal/infrastructure/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
	"github.com/fwahome/dukapos/pkg/pagination"
	"github.com/fwahome/dukapos/pkg/utils"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Code          string
	Name          string
	Category      string
	SellingPrice  float64
	CostPrice     float64
	Quantity      int
	QuantityAlert int
	SupplierID    *uint
}

func validateProductFields(name, category string, sellingPrice, costPrice float64, quantity, quantityAlert int) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if category == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Category is required"})
	}
	if sellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "selling_price", Message: "Selling price cannot be negative"})
	}
	if costPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cost_price", Message: "Cost price cannot be negative"})
	}
	if quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity cannot be negative"})
	}
	if quantityAlert < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity_alert", Message: "Quantity alert cannot be negative"})
	}
	return fieldErrors
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if fieldErrors := validateProductFields(input.Name, input.Category, input.SellingPrice, input.CostPrice, input.Quantity, input.QuantityAlert); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	} else {
		existing, err := s.productRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConstraintViolation("code", "A product with this code already exists")
		}
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	product := &entity.Product{
		Code:          code,
		Name:          input.Name,
		Category:      input.Category,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		SupplierID:    input.SupplierID,
	}
	product.SetSellingPriceFromDecimal(input.SellingPrice)
	product.SetCostPriceFromDecimal(input.CostPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		// Backstop for a concurrent insert slipping past the pre-check
		if infraRepo.IsUniqueViolation(err) {
			return nil, apperror.NewConstraintViolation("code", "A product with this code already exists")
		}
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID            uint
	Code          *string
	Name          *string
	Category      *string
	SellingPrice  *float64
	CostPrice     *float64
	Quantity      *int
	QuantityAlert *int
	SupplierID    *uint
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Code != nil && *input.Code != product.Code {
		existing, err := s.productRepo.GetByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConstraintViolation("code", "A product with this code already exists")
		}
		product.Code = *input.Code
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.SellingPrice != nil {
		product.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.CostPrice != nil {
		product.SetCostPriceFromDecimal(*input.CostPrice)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = input.SupplierID
	}

	if fieldErrors := validateProductFields(product.Name, product.Category, product.GetSellingPriceDecimal(), product.GetCostPriceDecimal(), product.Quantity, product.QuantityAlert); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if infraRepo.IsUniqueViolation(err) {
			return nil, apperror.NewConstraintViolation("code", "A product with this code already exists")
		}
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product. Committed sales keep their own snapshot
// of the product, so history stays valid after the delete.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products at or below their alert threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
