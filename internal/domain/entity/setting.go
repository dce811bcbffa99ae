package entity

import "time"

// Fixed setting keys. One record exists per key, seeded on first run.
const (
	SettingKeyStore    = "store"
	SettingKeyReceipt  = "receipt"
	SettingKeyTaxRate  = "tax_rate"
	SettingKeyCurrency = "currency"
)

// Setting is one configuration record. Value holds the JSON-encoded payload
// for the key; the settings service owns the typed views.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// StoreProfile is the payload for SettingKeyStore
type StoreProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ReceiptTemplate is the payload for SettingKeyReceipt
type ReceiptTemplate struct {
	Header     string `json:"header"`
	Footer     string `json:"footer"`
	ShowLogo   bool   `json:"show_logo"`
	PaperWidth int    `json:"paper_width"`
}

// TaxConfig is the payload for SettingKeyTaxRate. Tax is applied on the
// post-discount amount when enabled.
type TaxConfig struct {
	Enabled     bool    `json:"enabled"`
	RatePercent float64 `json:"rate_percent"`
}

// CurrencyFormat is the payload for SettingKeyCurrency
type CurrencyFormat struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	ThousandsSep  string `json:"thousands_sep"`
	DecimalPlaces int    `json:"decimal_places"`
	SymbolFirst   bool   `json:"symbol_first"`
}
