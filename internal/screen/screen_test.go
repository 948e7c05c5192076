package screen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHelp_ListsCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Help(&buf))

	out := buf.String()
	assert.Contains(t, out, "Robson - Cryptocurrency Trading CLI")
	for _, usage := range []string{"robson help", "robson report", "robson say [message]", "robson buy <args>", "robson sell <args>", "robson plan <strategy>"} {
		assert.Contains(t, out, usage)
	}
	assert.Contains(t, out, "Execute sell order")
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf))
	assert.Contains(t, buf.String(), "TRADING REPORT")
}

func TestSayMessage(t *testing.T) {
	assert.Equal(t, "hello world", SayMessage([]string{"hello", "world"}))
	assert.Equal(t, DefaultSayMessage, SayMessage(nil))
}

func TestSay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Say(&buf, "to the moon"))
	assert.Equal(t, "Robson says: to the moon\n", buf.String())
}

func TestOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Order(&buf, "sell", []string{"BTCUSDT", "0.001"}))

	out := buf.String()
	assert.Contains(t, out, "SELL ORDER")
	assert.Contains(t, out, "Sell order execution not yet implemented")
	assert.Contains(t, out, "Arguments received: [BTCUSDT 0.001]")
	assert.Contains(t, out, "Check position availability")
}

func TestOrder_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Order(&buf, "buy", nil))

	assert.NotContains(t, buf.String(), "Arguments received")
	assert.Contains(t, buf.String(), "Check account balance")
}

func TestOrderPayload_EmptyArgs(t *testing.T) {
	payload := OrderPayload("buy", nil)
	assert.Equal(t, []string{}, payload["args"])
	assert.Equal(t, "pending", payload["status"])
	assert.Equal(t, "Buy order functionality not yet implemented", payload["message"])
}

func TestScreens_ReportWriteErrors(t *testing.T) {
	assert.Error(t, Help(failingWriter{}))
	assert.Error(t, Report(failingWriter{}))
	assert.Error(t, Say(failingWriter{}, "x"))
	assert.Error(t, Order(failingWriter{}, "buy", nil))
	assert.Error(t, Welcome(failingWriter{}, "dev"))
}
