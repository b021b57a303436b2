package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/pkg/logger"
	"github.com/Harry9429/Distro-app/pkg/util"
	"gorm.io/gorm"
)

const (
	defaultCartSize  = "Large"
	defaultCartColor = "White"
)

// CartService owns the in-progress order during a visit. Lines are keyed by
// product id plus add-time, so adding the same product twice creates two
// lines; size and color are per-line and currently always the defaults.
type CartService interface {
	GetCart(ctx context.Context, userID uint) (*model.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, qty int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID uint, lineID string) (*model.Cart, error)
	UpdateQty(ctx context.Context, userID uint, lineID string, qty int) (*model.Cart, error)
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	store       repository.CartStore
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewCartService(store repository.CartStore, productRepo repository.ProductRepository) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		now:         time.Now,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uint) (*model.Cart, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCart(lines), nil
}

// AddItem is a no-op for qty < 1. The line price is qty times the product's
// parsed unit price, rendered back as a display string.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, qty int) (*model.Cart, error) {
	if qty < 1 {
		logger.Debug("Ignoring cart add with non-positive quantity", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
			"qty":        qty,
		})
		return s.GetCart(ctx, userID)
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	unit := util.ParsePrice(product.YourPrice)
	line := model.CartLine{
		ID:    fmt.Sprintf("cart-%d-%d", product.ID, s.now().UnixMilli()),
		Name:  product.Name,
		SKU:   product.SKU,
		Size:  defaultCartSize,
		Color: defaultCartColor,
		Qty:   qty,
		Price: util.FormatPrice(unit * qty),
		Image: product.Image,
	}
	lines = append(lines, line)

	if err := s.store.Put(ctx, userID, lines); err != nil {
		return nil, err
	}

	logger.Info("Cart line added", map[string]interface{}{
		"user_id": userID,
		"line_id": line.ID,
		"qty":     qty,
		"price":   line.Price,
	})
	return buildCart(lines), nil
}

// RemoveItem deletes the line unconditionally; an unknown id is a no-op
func (s *cartService) RemoveItem(ctx context.Context, userID uint, lineID string) (*model.Cart, error) {
	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}

	if err := s.store.Put(ctx, userID, kept); err != nil {
		return nil, err
	}
	return buildCart(kept), nil
}

// UpdateQty clamps to zero or more; a result of zero removes the line
func (s *cartService) UpdateQty(ctx context.Context, userID uint, lineID string, qty int) (*model.Cart, error) {
	if qty < 0 {
		qty = 0
	}

	lines, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ID == lineID {
			if qty == 0 {
				continue
			}
			unit := util.ParsePrice(l.Price)
			if l.Qty > 0 {
				unit /= l.Qty
			}
			l.Qty = qty
			l.Price = util.FormatPrice(unit * qty)
		}
		kept = append(kept, l)
	}

	if err := s.store.Put(ctx, userID, kept); err != nil {
		return nil, err
	}
	return buildCart(kept), nil
}

func (s *cartService) Clear(ctx context.Context, userID uint) error {
	return s.store.Clear(ctx, userID)
}

func buildCart(lines []model.CartLine) *model.Cart {
	cart := &model.Cart{Lines: lines}
	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}
	for _, l := range cart.Lines {
		cart.TotalQty += l.Qty
	}
	return cart
}
