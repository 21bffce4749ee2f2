package seed

import (
	"context"
	"testing"

	"recipe-share/internal/testutil"
	"recipe-share/pkg/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsRepeatable(t *testing.T) {
	repo := lookup.NewLookupRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))
	require.NoError(t, Seed(ctx, repo))

	metrics, err := repo.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Len(t, metrics, len(DefaultMetrics))
}
