package entity

import (
	"encoding/json"
	"time"

	"github.com/fwahome/dukapos/internal/domain/enum"
)

// Sale represents a committed checkout. Sales are immutable once written:
// there is no update or delete path. All monetary figures are cents.
type Sale struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	InvoiceNo      string             `gorm:"size:100;uniqueIndex;not null" json:"invoice_no"`
	SaleDate       time.Time          `gorm:"index;not null" json:"sale_date"`
	SubTotal       int64              `gorm:"not null" json:"-"`
	Discount       int64              `gorm:"not null;default:0" json:"-"`
	Tax            int64              `gorm:"not null;default:0" json:"-"`
	Total          int64              `gorm:"not null" json:"-"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	AmountReceived int64              `gorm:"not null" json:"-"`
	Change         int64              `gorm:"not null" json:"-"`
	CreatedAt      time.Time          `json:"created_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"sub_total"`
		Discount       float64 `json:"discount"`
		Tax            float64 `json:"tax"`
		Total          float64 `json:"total"`
		AmountReceived float64 `json:"amount_received"`
		Change         float64 `json:"change"`
	}{
		Alias:          Alias(s),
		SubTotal:       float64(s.SubTotal) / 100,
		Discount:       float64(s.Discount) / 100,
		Tax:            float64(s.Tax) / 100,
		Total:          float64(s.Total) / 100,
		AmountReceived: float64(s.AmountReceived) / 100,
		Change:         float64(s.Change) / 100,
	})
}

// UnmarshalJSON reads decimal amounts back into cents, so an exported
// sale restores without losing its figures
func (s *Sale) UnmarshalJSON(data []byte) error {
	type Alias Sale
	aux := &struct {
		*Alias
		SubTotal       float64 `json:"sub_total"`
		Discount       float64 `json:"discount"`
		Tax            float64 `json:"tax"`
		Total          float64 `json:"total"`
		AmountReceived float64 `json:"amount_received"`
		Change         float64 `json:"change"`
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	s.SubTotal = int64(aux.SubTotal*100 + 0.5)
	s.Discount = int64(aux.Discount*100 + 0.5)
	s.Tax = int64(aux.Tax*100 + 0.5)
	s.Total = int64(aux.Total*100 + 0.5)
	s.AmountReceived = int64(aux.AmountReceived*100 + 0.5)
	s.Change = int64(aux.Change*100 + 0.5)
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// TotalQuantity returns the number of units across all lines
func (s *Sale) TotalQuantity() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// SaleItem is one line of a committed sale. Code, name and price are a
// point-in-time snapshot of the product at commit time, not a live
// reference: later catalog edits never rewrite sales history.
type SaleItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SaleID    uint   `gorm:"index;not null" json:"sale_id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Code      string `gorm:"size:100;not null" json:"code"`
	Name      string `gorm:"size:255;not null" json:"name"`
	UnitPrice int64  `gorm:"not null" json:"-"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Total     int64  `gorm:"not null" json:"-"`
}

// MarshalJSON converts cents to decimal amounts for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Total:     float64(si.Total) / 100,
	})
}

// UnmarshalJSON reads decimal amounts back into cents
func (si *SaleItem) UnmarshalJSON(data []byte) error {
	type Alias SaleItem
	aux := &struct {
		*Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{Alias: (*Alias)(si)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	si.UnitPrice = int64(aux.UnitPrice*100 + 0.5)
	si.Total = int64(aux.Total*100 + 0.5)
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
