package service

import (
	"context"
	"fmt"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/repository"
	infraRepo "github.com/fwahome/dukapos/internal/infrastructure/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
	"github.com/fwahome/dukapos/pkg/pagination"
	"github.com/fwahome/dukapos/pkg/utils"
)

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Code    string
	Name    string
	Contact string
	Address string
	Email   *string
	Phone   *string
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateSupplierCode()
	} else {
		existing, err := s.supplierRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConstraintViolation("code", "A supplier with this code already exists")
		}
	}

	supplier := &entity.Supplier{
		Code:    code,
		Name:    input.Name,
		Contact: input.Contact,
		Address: input.Address,
		Email:   input.Email,
		Phone:   input.Phone,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		if infraRepo.IsUniqueViolation(err) {
			return nil, apperror.NewConstraintViolation("code", "A supplier with this code already exists")
		}
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uint) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists suppliers with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// UpdateSupplierInput represents the update supplier input
type UpdateSupplierInput struct {
	ID      uint
	Name    *string
	Contact *string
	Address *string
	Email   *string
	Phone   *string
}

// UpdateSupplier updates an existing supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, input *UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		supplier.Name = *input.Name
	}
	if input.Contact != nil {
		supplier.Contact = *input.Contact
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier deletes a supplier. The delete is refused while any
// product still references the supplier.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uint) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}

	count, err := s.productRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewReferentialBlock(fmt.Sprintf("Cannot delete supplier: %d products still reference it", count))
	}

	return s.supplierRepo.Delete(ctx, id)
}
