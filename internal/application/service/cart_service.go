package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
)

// CartLine is one product line in an open cart. UnitPrice and
// StockSnapshot are captured when the line is created so the cart stays
// stable while the catalog changes underneath it; the checkout commit
// re-checks stock authoritatively.
type CartLine struct {
	ProductID     uint   `json:"product_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	UnitPrice     int64  `json:"-"`
	Quantity      int    `json:"quantity"`
	StockSnapshot int    `json:"stock_snapshot"`
}

// Cart is a transient, in-memory cart. Carts are never persisted; an
// abandoned cart disappears with the process.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

// SubTotal returns the sum of line totals in cents
func (c *Cart) SubTotal() int64 {
	var sum int64
	for _, line := range c.Lines {
		sum += line.UnitPrice * int64(line.Quantity)
	}
	return sum
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CartTotals is the checkout arithmetic breakdown, all in cents. Discount
// applies to the subtotal and tax applies to the discounted amount, in
// that order.
type CartTotals struct {
	SubTotal int64
	Discount int64
	Tax      int64
	Total    int64
}

func roundPercent(amount int64, percent float64) int64 {
	return int64(math.Round(float64(amount) * percent / 100))
}

// ComputeTotals applies discount then tax to a subtotal, rounding
// half-up on each percentage step.
func ComputeTotals(subTotal int64, discountPercent, taxPercent float64) CartTotals {
	discount := roundPercent(subTotal, discountPercent)
	afterDiscount := subTotal - discount
	tax := roundPercent(afterDiscount, taxPercent)

	return CartTotals{
		SubTotal: subTotal,
		Discount: discount,
		Tax:      tax,
		Total:    afterDiscount + tax,
	}
}

// CartStore holds open carts in memory, keyed by cart ID. All access goes
// through the store's lock; there are no package-level carts.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewCartStore creates an empty cart store
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

// Create opens a new empty cart
func (cs *CartStore) Create() *Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := &Cart{
		ID:        uuid.New().String(),
		Lines:     []CartLine{},
		CreatedAt: time.Now(),
	}
	cs.carts[cart.ID] = cart
	return cart
}

// Get returns the cart with the given ID, or nil
func (cs *CartStore) Get(id string) *Cart {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.carts[id]
}

// Remove drops a cart from the store
func (cs *CartStore) Remove(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.carts, id)
}

// CartService handles cart lifecycle and line mutations
type CartService struct {
	store       *CartStore
	productRepo repository.ProductRepository

	// mu serializes mutations to cart lines. Carts are per-terminal and
	// short-lived, so one service-level lock is enough.
	mu sync.Mutex
}

// NewCartService creates a new cart service
func NewCartService(store *CartStore, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
	}
}

// CreateCart opens a new empty cart
func (s *CartService) CreateCart(ctx context.Context) *Cart {
	return s.store.Create()
}

// GetCart retrieves an open cart by ID
func (s *CartService) GetCart(ctx context.Context, id string) (*Cart, error) {
	cart := s.store.Get(id)
	if cart == nil {
		return nil, apperror.NewNotFoundError("Cart")
	}
	return cart, nil
}

// AddItem adds one unit of a product to the cart. An existing line grows
// by one only while it stays within the stock snapshot; a new line starts
// at quantity one and is refused outright when the product has no stock.
// On failure the cart is left unchanged.
func (s *CartService) AddItem(ctx context.Context, cartID string, productID uint) (*Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			if cart.Lines[i].Quantity+1 > cart.Lines[i].StockSnapshot {
				return nil, apperror.ErrInsufficientStock
			}
			cart.Lines[i].Quantity++
			return cart, nil
		}
	}

	if product.Quantity < 1 {
		return nil, apperror.ErrOutOfStock
	}

	cart.Lines = append(cart.Lines, CartLine{
		ProductID:     product.ID,
		Code:          product.Code,
		Name:          product.Name,
		UnitPrice:     product.SellingPrice,
		Quantity:      1,
		StockSnapshot: product.Quantity,
	})

	return cart, nil
}

// SetQuantity sets a line to an exact quantity. Below one removes the
// line; above the stock snapshot clamps to the snapshot and reports the
// shortfall.
func (s *CartService) SetQuantity(ctx context.Context, cartID string, productID uint, quantity int) (*Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range cart.Lines {
		if cart.Lines[i].ProductID != productID {
			continue
		}

		if quantity < 1 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return cart, nil
		}
		if quantity > cart.Lines[i].StockSnapshot {
			cart.Lines[i].Quantity = cart.Lines[i].StockSnapshot
			return cart, apperror.ErrInsufficientStock
		}
		cart.Lines[i].Quantity = quantity
		return cart, nil
	}

	return nil, apperror.NewNotFoundError("Cart item")
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID string, productID uint) (*Cart, error) {
	return s.SetQuantity(ctx, cartID, productID, 0)
}

// ClearCart removes all lines but keeps the cart open
func (s *CartService) ClearCart(ctx context.Context, cartID string) (*Cart, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart.Lines = []CartLine{}
	return cart, nil
}

// buildSale turns the cart into a sale record with line snapshots. Caller
// holds the mutation lock.
func buildSale(cart *Cart, totals CartTotals, invoiceNo string, method enum.PaymentMethod, amountReceived int64, at time.Time) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, entity.SaleItem{
			ProductID: line.ProductID,
			Code:      line.Code,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Total:     line.UnitPrice * int64(line.Quantity),
		})
	}

	return &entity.Sale{
		InvoiceNo:      invoiceNo,
		SaleDate:       at,
		SubTotal:       totals.SubTotal,
		Discount:       totals.Discount,
		Tax:            totals.Tax,
		Total:          totals.Total,
		PaymentMethod:  method,
		AmountReceived: amountReceived,
		Change:         amountReceived - totals.Total,
		Items:          items,
	}
}
