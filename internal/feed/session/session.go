// Package session wires the live-view synchronization layer together: one
// Session owns the push-channel client, the per-surface bounded list stores,
// the counter store, and the per-surface filter queries. Sessions are
// independent of each other; nothing here is process-global.
package session

import (
	"context"
	"sync"

	"alphafeed/config"
	"alphafeed/internal/feed/filter"
	"alphafeed/internal/feed/snapshot"
	"alphafeed/internal/feed/stream"
	"alphafeed/internal/feed/viewstore"
	"alphafeed/pkg/alphasuite"

	"go.uber.org/zap"
)

// Surface identifies one rendering surface fed by a ListStore.
type Surface string

const (
	SurfaceTokensCompact Surface = "tokens_compact"
	SurfaceTokensTable   Surface = "tokens_table"
	SurfaceTradesCompact Surface = "trades_compact"
	SurfaceTradesTable   Surface = "trades_table"
	SurfaceArbCards      Surface = "arb_cards"
	SurfaceArbTable      Surface = "arb_table"
)

type Session struct {
	cfg    *config.Config
	logger *zap.Logger

	ws     *alphasuite.WSClient
	rest   *alphasuite.RESTClient
	router *stream.Router

	stores   map[Surface]*viewstore.ListStore
	counters *viewstore.CounterStore

	queryMu sync.Mutex
	queries map[Surface]string
}

// New builds a session from configuration. Nothing runs until Start.
func New(cfg *config.Config, logger *zap.Logger) *Session {
	view := cfg.View
	stores := map[Surface]*viewstore.ListStore{
		SurfaceTokensCompact: viewstore.NewListStore(view.CompactCap),
		SurfaceTokensTable:   viewstore.NewListStore(view.TableCap),
		SurfaceTradesCompact: viewstore.NewListStore(view.CompactCap),
		SurfaceTradesTable:   viewstore.NewListStore(view.TableCap),
		SurfaceArbCards:      viewstore.NewListStore(view.CardCap),
		SurfaceArbTable:      viewstore.NewListStore(view.ArbTableCap),
	}
	counters := viewstore.NewCounterStore()

	router := stream.NewRouter(stream.Stores{
		TokensCompact: stores[SurfaceTokensCompact],
		TokensTable:   stores[SurfaceTokensTable],
		TradesCompact: stores[SurfaceTradesCompact],
		TradesTable:   stores[SurfaceTradesTable],
		ArbCards:      stores[SurfaceArbCards],
		ArbTable:      stores[SurfaceArbTable],
		Counters:      counters,
	}, cfg.Backend.ExplorerURL, logger)

	ws := alphasuite.NewWSClient(
		cfg.Backend.WS.URL,
		alphasuite.FixedDelay(cfg.Backend.WS.ReconnectDelay),
		cfg.Backend.WS.HeartbeatInterval,
		logger,
	)
	ws.SetMessageHandler(router.HandleRaw)

	return &Session{
		cfg:      cfg,
		logger:   logger,
		ws:       ws,
		rest:     alphasuite.NewRESTClient(cfg.Backend.REST.BaseURL, cfg.Backend.REST.Timeout),
		router:   router,
		stores:   stores,
		counters: counters,
		queries:  make(map[Surface]string),
	}
}

// Start connects the push channel and launches the background work: the
// listen loop, the counters resync, and the table warm start. It never
// blocks on the backend being reachable.
func (s *Session) Start(ctx context.Context) {
	// Counters snapshot: fire-and-forget at startup, optionally periodic.
	loader := &snapshot.StatsLoader{
		Client:   s.rest,
		Counters: s.counters,
		Timeout:  s.cfg.Backend.REST.Timeout,
		Logger:   s.logger,
	}
	scheduler := &snapshot.ResyncScheduler{
		Interval: s.cfg.View.ResyncInterval,
		Load:     loader.LoadOnce,
	}
	scheduler.Start(ctx)

	go func() {
		// The tables must be seeded before the first push event lands, or
		// stale seed rows would rank above fresher live entries. Warm start
		// therefore completes (or fails) before the channel is dialed.
		s.warmStart(ctx)

		// A failed first dial is not fatal: Listen keeps reconnecting.
		if err := s.ws.Connect(); err != nil {
			s.logger.Warn("initial connect failed, will retry", zap.Error(err))
		}
		s.ws.Listen()
	}()
}

// warmStart seeds the full-table surfaces from the pull endpoints so the
// view is populated before the first push event. The endpoints return
// newest-first lists; entries are inserted oldest first to preserve that
// order in the stores. Any failure leaves the tables empty until events
// arrive.
func (s *Session) warmStart(ctx context.Context) {
	explorer := s.cfg.Backend.ExplorerURL

	if tokens, err := s.rest.GetTokens(ctx); err != nil {
		s.logger.Warn("token warm start failed", zap.Error(err))
	} else {
		for i := len(tokens) - 1; i >= 0; i-- {
			_, table := stream.TokenEntries(&tokens[i], explorer)
			s.stores[SurfaceTokensTable].InsertFront(table)
		}
	}

	if trades, err := s.rest.GetTrades(ctx); err != nil {
		s.logger.Warn("trade warm start failed", zap.Error(err))
	} else {
		for i := len(trades) - 1; i >= 0; i-- {
			_, table := stream.TradeEntries(&trades[i], explorer)
			s.stores[SurfaceTradesTable].InsertFront(table)
		}
	}

	if arbs, err := s.rest.GetArbs(ctx); err != nil {
		s.logger.Warn("arbitrage warm start failed", zap.Error(err))
	} else {
		for i := len(arbs) - 1; i >= 0; i-- {
			_, table := stream.ArbEntries(&arbs[i], explorer)
			s.stores[SurfaceArbTable].InsertFront(table)
		}
	}
}

// Store returns the list store backing a surface, nil for unknown surfaces.
func (s *Session) Store(surface Surface) *viewstore.ListStore {
	return s.stores[surface]
}

// Counters returns the session's counter store.
func (s *Session) Counters() *viewstore.CounterStore {
	return s.counters
}

// Router returns the session's event router.
func (s *Session) Router() *stream.Router {
	return s.router
}

// ConnState returns the push channel's current state, the connectivity
// indicator input.
func (s *Session) ConnState() alphasuite.ConnState {
	return s.ws.State()
}

// ConnStatesCh subscribes to connectivity changes for indicator rendering.
func (s *Session) ConnStatesCh() (<-chan alphasuite.ConnState, func()) {
	return s.ws.StatesCh()
}

// SetQuery updates the live filter query for a surface.
func (s *Session) SetQuery(surface Surface, query string) {
	s.queryMu.Lock()
	defer s.queryMu.Unlock()
	s.queries[surface] = query
}

// Query returns the current filter query for a surface.
func (s *Session) Query(surface Surface) string {
	s.queryMu.Lock()
	defer s.queryMu.Unlock()
	return s.queries[surface]
}

// Visible returns the surface's rows that pass its current filter query,
// newest first. The underlying store is never mutated by filtering.
func (s *Session) Visible(surface Surface) []viewstore.Entry {
	store := s.stores[surface]
	if store == nil {
		return nil
	}
	return filter.Visible(store.Entries(), s.Query(surface))
}
