package entity

import (
	"encoding/json"
	"time"
)

// Product represents an item in the shop catalog. Prices are stored in
// cents; the custom marshaler exposes them as decimals to clients.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Code          string    `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Category      string    `gorm:"size:255;index" json:"category"`
	SellingPrice  int64     `gorm:"not null;default:0" json:"-"`
	CostPrice     int64     `gorm:"not null;default:0" json:"-"`
	Quantity      int       `gorm:"not null;default:0" json:"quantity"`
	QuantityAlert int       `gorm:"not null;default:0" json:"quantity_alert"`
	SupplierID    *uint     `gorm:"index" json:"supplier_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price*100 + 0.5)
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(price*100 + 0.5)
}

// IsLowStock reports whether the stock level has reached the alert threshold
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.QuantityAlert
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		SellingPrice float64 `json:"selling_price"`
		CostPrice    float64 `json:"cost_price"`
	}{
		Alias:        Alias(p),
		SellingPrice: p.GetSellingPriceDecimal(),
		CostPrice:    p.GetCostPriceDecimal(),
	})
}

// UnmarshalJSON reads decimal prices back into cents, so an exported
// product restores without losing its amounts
func (p *Product) UnmarshalJSON(data []byte) error {
	type Alias Product
	aux := &struct {
		*Alias
		SellingPrice float64 `json:"selling_price"`
		CostPrice    float64 `json:"cost_price"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	p.SetSellingPriceFromDecimal(aux.SellingPrice)
	p.SetCostPriceFromDecimal(aux.CostPrice)
	return nil
}
