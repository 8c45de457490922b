package alphasuite

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Event discriminants carried in the push-channel envelope's "type" field.
const (
	EventNewToken = "new_token"
	EventNewTrade = "new_trade"
	EventNewArb   = "new_arb"
)

// Heartbeat is the literal keepalive payload exchanged on the push channel.
// The backend answers "ping" with "pong"; both are plain text frames.
const (
	HeartbeatPing = "ping"
	HeartbeatPong = "pong"
)

// Envelope is the generic push-channel frame: a discriminant plus a raw
// payload whose shape depends on the discriminant.
type Envelope struct {
	Type string          `json:"type"` // "new_token", "new_trade" or "new_arb"
	Data json.RawMessage `json:"data"` // Delay decoding until the type is known
}

// Token is the payload of a "new_token" event: a freshly deployed token
// contract that passed the backend scanner's liquidity gate.
type Token struct {
	Address   string          `json:"address"`   // contract address, e.g. "0xabc..."
	Name      string          `json:"name"`      // token name reported by the contract
	Symbol    string          `json:"symbol"`    // ticker symbol; may be absent for odd contracts
	Liquidity decimal.Decimal `json:"liquidity"` // pool liquidity in USD at detection time
	Safe      bool            `json:"safe"`      // backend security-analysis verdict
}

// Trade is the payload of a "new_trade" event: a transaction by a tracked
// large wallet.
type Trade struct {
	Wallet  string          `json:"wallet"`  // human label of the tracked wallet
	Address string          `json:"address"` // wallet address
	Side    string          `json:"side"`    // e.g. "BUY", "SELL"
	Amount  decimal.Decimal `json:"amount"`  // trade size in native units
	TxHash  string          `json:"tx_hash"` // transaction reference
}

// Arb is the payload of a "new_arb" event: a cross-venue price spread found
// by the backend detector.
type Arb struct {
	BaseToken     string          `json:"base_token"`
	QuoteToken    string          `json:"quote_token"`
	BuyDex        string          `json:"buy_dex"`
	SellDex       string          `json:"sell_dex"`
	BuyPrice      decimal.Decimal `json:"buy_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// Stats is the authoritative counters snapshot served by the pull endpoint.
// Keys absent from a snapshot mean "leave the current value alone".
type Stats map[string]int64
