package stream

import (
	"strings"

	"alphafeed/internal/feed/viewstore"
	"alphafeed/pkg/alphasuite"
)

// Placeholder cells for absent payload fields. A partially populated event
// still renders; it is never rejected.
const (
	UnknownSymbol = "???"
	UnknownName   = "Unknown Token"
	UnknownWallet = "unknown"
	UnknownSide   = "UNKNOWN"
)

// TokenEntries projects a token event onto the compact panel and the full
// table. Both entries share one identity so a sink can correlate them.
func TokenEntries(t *alphasuite.Token, explorerURL string) (compact, table viewstore.Entry) {
	symbol := t.Symbol
	if symbol == "" {
		symbol = UnknownSymbol
	}
	name := t.Name
	if name == "" {
		name = UnknownName
	}
	liquidity := "$" + t.Liquidity.StringFixed(2)
	safety := "RISKY"
	if t.Safe {
		safety = "SAFE"
	}
	link := explorerURL + "/token/" + t.Address

	compact = viewstore.NewEntry(link, symbol, liquidity, safety)
	table = viewstore.Entry{
		ID:         compact.ID,
		Fields:     []string{symbol, name, t.Address, liquidity, safety},
		Link:       link,
		CapturedAt: compact.CapturedAt,
	}
	return compact, table
}

// TradeEntries projects a whale-trade event onto the compact panel and the
// full table.
func TradeEntries(t *alphasuite.Trade, explorerURL string) (compact, table viewstore.Entry) {
	wallet := t.Wallet
	if wallet == "" {
		wallet = UnknownWallet
	}
	side := strings.ToUpper(t.Side)
	if side == "" {
		side = UnknownSide
	}
	amount := t.Amount.String() + " ETH"
	link := explorerURL + "/tx/" + t.TxHash

	compact = viewstore.NewEntry(link, wallet, side, amount)
	table = viewstore.Entry{
		ID:         compact.ID,
		Fields:     []string{wallet, t.Address, side, amount, t.TxHash},
		Link:       link,
		CapturedAt: compact.CapturedAt,
	}
	return compact, table
}

// ArbEntries projects an arbitrage event onto the card grid and the full
// table.
func ArbEntries(a *alphasuite.Arb, explorerURL string) (card, table viewstore.Entry) {
	base := a.BaseToken
	if base == "" {
		base = UnknownSymbol
	}
	quote := a.QuoteToken
	if quote == "" {
		quote = UnknownSymbol
	}
	pair := base + "/" + quote
	buy := a.BuyDex + " @ " + a.BuyPrice.String()
	sell := a.SellDex + " @ " + a.SellPrice.String()
	profit := a.ProfitPercent.StringFixed(2) + "%"
	link := explorerURL + "/token/" + a.BaseToken

	card = viewstore.NewEntry(link, pair, profit)
	table = viewstore.Entry{
		ID:         card.ID,
		Fields:     []string{pair, buy, sell, profit},
		Link:       link,
		CapturedAt: card.CapturedAt,
	}
	return card, table
}
