package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/pkg/apperror"
	"github.com/fwahome/dukapos/pkg/pagination"
)

func TestRestoreNotifiesActor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "Rice 1kg", 100, 10, 1)

	data, err := env.backup.Export(ctx)
	require.NoError(t, err)

	require.NoError(t, env.backup.Restore(ctx, data, "kamau"))

	result, err := env.notifier.ListNotifications(ctx, pagination.DefaultPagination())
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Contains(t, result.Items[0].Message, "kamau")
	assert.Contains(t, result.Items[0].Message, "1 products")
}

func TestRestoreRejectsNilPayload(t *testing.T) {
	env := newTestEnv(t)

	err := env.backup.Restore(context.Background(), nil, "kamau")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
