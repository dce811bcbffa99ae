package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/internal/domain/entity"
)

func TestUpdateSettingRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.settings.UpdateSetting(ctx, entity.SettingKeyStore,
		[]byte(`{"name":"Duka Moja","address":"Tom Mboya St","phone":"0712345678","email":"duka@example.com"}`))
	require.NoError(t, err)

	profile, err := env.settings.GetStoreProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Duka Moja", profile.Name)
	assert.Equal(t, "Tom Mboya St", profile.Address)

	// Second write replaces, it does not duplicate
	_, err = env.settings.UpdateSetting(ctx, entity.SettingKeyStore,
		[]byte(`{"name":"Duka Mbili","address":"","phone":"","email":""}`))
	require.NoError(t, err)

	settings, err := env.settings.ListSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, settings, 1)

	profile, err = env.settings.GetStoreProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Duka Mbili", profile.Name)
}

func TestUpdateSettingRejectsUnknownKey(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.UpdateSetting(context.Background(), "theme", []byte(`{"dark":true}`))
	assert.Error(t, err)
}

func TestUpdateSettingRejectsWrongShape(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.UpdateSetting(context.Background(), entity.SettingKeyTaxRate,
		[]byte(`{"enabled":true,"rate":"sixteen"}`))
	assert.Error(t, err)
}

func TestUpdateSettingRejectsTaxRateOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.settings.UpdateSetting(context.Background(), entity.SettingKeyTaxRate,
		[]byte(`{"enabled":true,"rate_percent":140}`))
	assert.Error(t, err)
}

func TestTaxConfigDefaultsDisabled(t *testing.T) {
	env := newTestEnv(t)

	tax, err := env.settings.GetTaxConfig(context.Background())
	require.NoError(t, err)
	assert.False(t, tax.Enabled)
}

func TestFormatCurrency(t *testing.T) {
	kes := &entity.CurrencyFormat{
		Code:          "KES",
		Symbol:        "KSh",
		ThousandsSep:  ",",
		DecimalPlaces: 2,
		SymbolFirst:   true,
	}
	assert.Equal(t, "KSh 1,234,567.89", FormatCurrency(123456789, kes))
	assert.Equal(t, "KSh 0.05", FormatCurrency(5, kes))
	assert.Equal(t, "KSh -12.00", FormatCurrency(-1200, kes))

	plain := &entity.CurrencyFormat{Symbol: "F", DecimalPlaces: 0, SymbolFirst: false}
	assert.Equal(t, "1234 F", FormatCurrency(123400, plain))
}
