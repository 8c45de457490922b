package stream

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"alphafeed/internal/feed/viewstore"
	"alphafeed/pkg/alphasuite"

	"go.uber.org/zap"
)

// Event is a decoded push-channel frame. Exactly one payload pointer is
// non-nil, selected by Kind.
type Event struct {
	Kind  string
	Token *alphasuite.Token
	Trade *alphasuite.Trade
	Arb   *alphasuite.Arb
}

// Decode parses a raw frame into a typed event. Frames without a known
// discriminant (including "pong" keepalive replies, which are not JSON at
// all) come back as errors; the caller drops them without surfacing anything
// to the user.
func Decode(raw []byte) (*Event, error) {
	var env alphasuite.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("undecodable frame: %w", err)
	}

	ev := &Event{Kind: env.Type}
	switch env.Type {
	case alphasuite.EventNewToken:
		ev.Token = &alphasuite.Token{}
		if err := json.Unmarshal(env.Data, ev.Token); err != nil {
			return nil, fmt.Errorf("bad %s payload: %w", env.Type, err)
		}
	case alphasuite.EventNewTrade:
		ev.Trade = &alphasuite.Trade{}
		if err := json.Unmarshal(env.Data, ev.Trade); err != nil {
			return nil, fmt.Errorf("bad %s payload: %w", env.Type, err)
		}
	case alphasuite.EventNewArb:
		ev.Arb = &alphasuite.Arb{}
		if err := json.Unmarshal(env.Data, ev.Arb); err != nil {
			return nil, fmt.Errorf("bad %s payload: %w", env.Type, err)
		}
	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	return ev, nil
}

// Stores groups the view-model stores the router writes to.
type Stores struct {
	TokensCompact *viewstore.ListStore
	TokensTable   *viewstore.ListStore
	TradesCompact *viewstore.ListStore
	TradesTable   *viewstore.ListStore
	ArbCards      *viewstore.ListStore
	ArbTable      *viewstore.ListStore

	Counters *viewstore.CounterStore
}

// Router decodes inbound frames and dispatches them to the matching stores.
// A recognized event produces exactly one counter increment and one entry
// per affected surface. Bad frames are dropped; the drop count is kept for
// diagnostics but no error crosses this boundary.
type Router struct {
	logger      *zap.Logger
	stores      Stores
	explorerURL string

	decoded atomic.Int64
	dropped atomic.Int64
}

func NewRouter(stores Stores, explorerURL string, logger *zap.Logger) *Router {
	return &Router{
		logger:      logger,
		stores:      stores,
		explorerURL: explorerURL,
	}
}

// HandleRaw is the push channel's message callback.
func (r *Router) HandleRaw(msg []byte) {
	ev, err := Decode(msg)
	if err != nil {
		r.dropped.Add(1)
		r.logger.Debug("dropped frame", zap.Error(err))
		return
	}
	r.decoded.Add(1)
	r.Handle(ev)
}

// Handle routes a decoded event to its stores.
func (r *Router) Handle(ev *Event) {
	switch ev.Kind {
	case alphasuite.EventNewToken:
		compact, table := TokenEntries(ev.Token, r.explorerURL)
		r.stores.TokensCompact.InsertFront(compact)
		r.stores.TokensTable.InsertFront(table)
		r.stores.Counters.Increment(viewstore.CounterTokensScanned)

	case alphasuite.EventNewTrade:
		compact, table := TradeEntries(ev.Trade, r.explorerURL)
		r.stores.TradesCompact.InsertFront(compact)
		r.stores.TradesTable.InsertFront(table)
		r.stores.Counters.Increment(viewstore.CounterTradesDetected)

	case alphasuite.EventNewArb:
		card, table := ArbEntries(ev.Arb, r.explorerURL)
		r.stores.ArbCards.InsertFront(card)
		r.stores.ArbTable.InsertFront(table)
		r.stores.Counters.Increment(viewstore.CounterArbFound)
	}
}

// Stats returns how many frames were decoded and dropped since startup.
func (r *Router) Stats() (decoded, dropped int64) {
	return r.decoded.Load(), r.dropped.Load()
}
