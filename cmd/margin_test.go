package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginBuyArgsStopPercent(t *testing.T) {
	out, err := executeCommand(t, fakeDjango(t, 0), "margin-buy", "--capital", "100")
	require.NoError(t, err)

	assert.Equal(t, "isolated_margin_buy --capital 100 --leverage 3 --symbol BTCUSDC --client-id 1 --stop-percent 2\n", out)
}

func TestMarginBuyArgsStopPriceWins(t *testing.T) {
	out, err := executeCommand(t, fakeDjango(t, 0), "margin-buy",
		"--capital", "50", "--stop-price", "85000", "--stop-percent", "5", "--live", "--confirm")
	require.NoError(t, err)

	assert.Contains(t, out, "--stop-price 85000")
	assert.NotContains(t, out, "--stop-percent")
	assert.Contains(t, out, "--live --confirm")
}

func TestMarginBuyRequiresCapital(t *testing.T) {
	_, err := executeCommand(t, nil, "margin-buy")
	assert.ErrorContains(t, err, "capital")
}

func TestMarginPositionsUsesPositionsCommand(t *testing.T) {
	out, err := executeCommand(t, fakeDjango(t, 0), "margin-positions", "--symbol", "BTCUSDC", "--json")
	require.NoError(t, err)

	assert.Equal(t, "positions --client-id 1 --symbol BTCUSDC --json\n", out)
}

func TestOperationsOpenAndClosedExclusive(t *testing.T) {
	_, err := executeCommand(t, nil, "operations", "--open", "--closed")
	assert.Error(t, err)
}

func TestOperationsForwardsLimit(t *testing.T) {
	out, err := executeCommand(t, fakeDjango(t, 0), "operations", "--open", "--limit", "5")
	require.NoError(t, err)

	assert.Equal(t, "operations --client-id 1 --limit 5 --open\n", out)
}

func TestStatusBackendFailure(t *testing.T) {
	_, err := executeCommand(t, fakeDjango(t, 2), "status")
	require.Error(t, err)

	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), "status 2")
}
