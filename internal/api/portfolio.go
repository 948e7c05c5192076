package api

import (
	"context"
	"fmt"
)

// Position is an open position as reported by the portfolio endpoint.
// Numeric fields are decimal strings.
type Position struct {
	ID                      int    `json:"id"`
	OperationID             int    `json:"operation_id"`
	Symbol                  string `json:"symbol"`
	Side                    string `json:"side"`
	Quantity                string `json:"quantity"`
	EntryPrice              string `json:"entry_price"`
	CurrentPrice            string `json:"current_price"`
	UnrealizedPnL           string `json:"unrealized_pnl"`
	UnrealizedPnLPercent    string `json:"unrealized_pnl_percent"`
	StopLoss                string `json:"stop_loss"`
	TakeProfit              string `json:"take_profit"`
	DistanceToStopPercent   string `json:"distance_to_stop_percent"`
	DistanceToTargetPercent string `json:"distance_to_target_percent"`
	Status                  string `json:"status"`
}

// Positions is the body of /api/portfolio/positions/.
type Positions struct {
	Positions []Position `json:"positions"`
}

// Price is the body of /api/market/price/<symbol>/.
type Price struct {
	Symbol    string `json:"symbol"`
	Bid       string `json:"bid"`
	Ask       string `json:"ask"`
	Last      string `json:"last"`
	Timestamp int64  `json:"timestamp"`
	Source    string `json:"source"`
}

// Positions lists active positions.
func (c *Client) Positions(ctx context.Context) (Positions, error) {
	var payload Positions
	if err := c.GetJSON(ctx, "/api/portfolio/positions/", &payload); err != nil {
		return Positions{}, fmt.Errorf("fetching positions: %w", err)
	}
	return payload, nil
}

// Price returns the current quote for a normalized symbol.
func (c *Client) Price(ctx context.Context, symbol string) (Price, error) {
	var payload Price
	if err := c.GetJSON(ctx, fmt.Sprintf("/api/market/price/%s/", symbol), &payload); err != nil {
		return Price{}, fmt.Errorf("fetching price for %s: %w", symbol, err)
	}
	return payload, nil
}

// Patrimony returns the raw patrimony document.
func (c *Client) Patrimony(ctx context.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.GetJSON(ctx, "/api/portfolio/patrimony/", &payload); err != nil {
		return nil, fmt.Errorf("fetching patrimony: %w", err)
	}
	return payload, nil
}

// Balance returns the raw balance document. Older backends only expose
// /api/account/balance/, which is tried when the trade endpoint is missing.
func (c *Client) Balance(ctx context.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	err := c.GetJSON(ctx, "/api/trade/balance/", &payload)
	if IsNotFound(err) {
		payload = nil
		err = c.GetJSON(ctx, "/api/account/balance/", &payload)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching balance: %w", err)
	}
	return payload, nil
}
