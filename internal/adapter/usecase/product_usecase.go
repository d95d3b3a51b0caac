package usecase

import (
	"context"
	"strings"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// ProductUseCase validates and stores products.
type ProductUseCase struct {
	repo port.ProductRepository
}

func NewProductUseCase(repo port.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// CreateProduct validates req and stores it. A serial number already in use
// yields a conflict from the repository.
func (u *ProductUseCase) CreateProduct(ctx context.Context, req port.CreateProductReq) (*port.ProductResponse, error) {
	p := domain.Product{
		Title:        strings.TrimSpace(req.Title),
		Price:        req.Price,
		Category:     req.Category,
		SerialNumber: strings.TrimSpace(req.SerialNumber),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	resp := port.NewProductResponse(created)
	return &resp, nil
}

func (u *ProductUseCase) GetProduct(ctx context.Context, id int64) (*port.ProductResponse, error) {
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := port.NewProductResponse(p)
	return &resp, nil
}
