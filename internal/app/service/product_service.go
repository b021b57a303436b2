package service

import (
	"errors"
	"strings"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("a product with this SKU already exists")
	ErrInvalidPrice    = errors.New("price must be a positive amount")
)

type ProductListOptions struct {
	Category string
	Search   string
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductBySKU(sku string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(product *model.Product) error
	AdjustStock(id uint, delta int) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"category": opts.Category,
		"search":   opts.Search,
	})

	products, err := s.productRepo.FindAll(opts.Category)
	if err != nil {
		logger.Error("Failed to list products", err, nil)
		return nil, err
	}

	if opts.Search == "" {
		return products, nil
	}

	needle := strings.ToLower(opts.Search)
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.SKU), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductBySKU(sku string) (*model.Product, error) {
	product, err := s.productRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(product *model.Product) error {
	if util.ParsePrice(product.YourPrice) <= 0 {
		return ErrInvalidPrice
	}

	existing, err := s.productRepo.FindBySKU(product.SKU)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrSKUExists
	}

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"sku": product.SKU,
		})
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"sku":        product.SKU,
	})
	return nil
}

func (s *productService) UpdateProduct(product *model.Product) error {
	if _, err := s.GetProductByID(product.ID); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

// AdjustStock applies a signed delta to stock, flooring at zero.
func (s *productService) AdjustStock(id uint, delta int) (*model.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	product.StockQuantity += delta
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to adjust stock", err, map[string]interface{}{
			"product_id": id,
			"delta":      delta,
		})
		return nil, err
	}
	return product, nil
}
