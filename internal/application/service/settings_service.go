package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
)

// SettingsService owns the typed views over the fixed settings records
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

var settingKeys = map[string]bool{
	entity.SettingKeyStore:    true,
	entity.SettingKeyReceipt:  true,
	entity.SettingKeyTaxRate:  true,
	entity.SettingKeyCurrency: true,
}

// GetSetting returns the raw payload for one of the fixed keys
func (s *SettingsService) GetSetting(ctx context.Context, key string) (*entity.Setting, error) {
	if !settingKeys[key] {
		return nil, apperror.NewNotFoundError("Setting")
	}

	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return setting, nil
}

// ListSettings returns all settings records
func (s *SettingsService) ListSettings(ctx context.Context) ([]entity.Setting, error) {
	return s.settingsRepo.List(ctx)
}

// UpdateSetting validates the payload against the key's schema and writes
// it. Unknown keys are refused; the set of settings records is fixed.
func (s *SettingsService) UpdateSetting(ctx context.Context, key string, payload json.RawMessage) (*entity.Setting, error) {
	if !settingKeys[key] {
		return nil, apperror.NewNotFoundError("Setting")
	}

	var target interface{}
	switch key {
	case entity.SettingKeyStore:
		target = &entity.StoreProfile{}
	case entity.SettingKeyReceipt:
		target = &entity.ReceiptTemplate{}
	case entity.SettingKeyTaxRate:
		target = &entity.TaxConfig{}
	case entity.SettingKeyCurrency:
		target = &entity.CurrencyFormat{}
	}

	decoder := json.NewDecoder(strings.NewReader(string(payload)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "value", Message: "Payload does not match the schema for this setting"},
		})
	}

	if key == entity.SettingKeyTaxRate {
		tax := target.(*entity.TaxConfig)
		if tax.RatePercent < 0 || tax.RatePercent > 100 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "rate_percent", Message: "Tax rate must be between 0 and 100"},
			})
		}
	}

	normalized, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}

	setting := &entity.Setting{Key: key, Value: string(normalized)}
	if err := s.settingsRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetByKey(ctx, key)
}

func (s *SettingsService) getTyped(ctx context.Context, key string, target interface{}) error {
	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if setting == nil {
		return nil
	}
	return json.Unmarshal([]byte(setting.Value), target)
}

// GetStoreProfile returns the store profile, zero-valued when unseeded
func (s *SettingsService) GetStoreProfile(ctx context.Context) (*entity.StoreProfile, error) {
	var profile entity.StoreProfile
	err := s.getTyped(ctx, entity.SettingKeyStore, &profile)
	return &profile, err
}

// GetReceiptTemplate returns the receipt template
func (s *SettingsService) GetReceiptTemplate(ctx context.Context) (*entity.ReceiptTemplate, error) {
	var tmpl entity.ReceiptTemplate
	err := s.getTyped(ctx, entity.SettingKeyReceipt, &tmpl)
	return &tmpl, err
}

// GetTaxConfig returns the tax configuration. Tax defaults to disabled
// when the record is missing.
func (s *SettingsService) GetTaxConfig(ctx context.Context) (*entity.TaxConfig, error) {
	var tax entity.TaxConfig
	err := s.getTyped(ctx, entity.SettingKeyTaxRate, &tax)
	return &tax, err
}

// GetCurrencyFormat returns the currency format
func (s *SettingsService) GetCurrencyFormat(ctx context.Context) (*entity.CurrencyFormat, error) {
	var format entity.CurrencyFormat
	err := s.getTyped(ctx, entity.SettingKeyCurrency, &format)
	return &format, err
}

// FormatAmount renders cents using the configured currency format, for
// receipt text and notifications.
func (s *SettingsService) FormatAmount(ctx context.Context, cents int64) (string, error) {
	format, err := s.GetCurrencyFormat(ctx)
	if err != nil {
		return "", err
	}
	return FormatCurrency(cents, format), nil
}

// FormatCurrency renders cents according to the given format
func FormatCurrency(cents int64, format *entity.CurrencyFormat) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	if format.ThousandsSep != "" {
		var groups []string
		for len(digits) > 3 {
			groups = append([]string{digits[len(digits)-3:]}, groups...)
			digits = digits[:len(digits)-3]
		}
		groups = append([]string{digits}, groups...)
		digits = strings.Join(groups, format.ThousandsSep)
	}

	amount := digits
	if format.DecimalPlaces > 0 {
		fracStr := fmt.Sprintf("%02d", frac)
		if format.DecimalPlaces < 2 {
			fracStr = fracStr[:format.DecimalPlaces]
		} else if format.DecimalPlaces > 2 {
			fracStr += strings.Repeat("0", format.DecimalPlaces-2)
		}
		amount = digits + "." + fracStr
	}

	if negative {
		amount = "-" + amount
	}

	if format.SymbolFirst {
		return format.Symbol + " " + amount
	}
	return amount + " " + format.Symbol
}
