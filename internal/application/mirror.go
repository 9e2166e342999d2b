package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/bnema/quotevault-cli/internal/domain"
	"github.com/bnema/quotevault-cli/internal/ports"
)

const (
	quotesPath      = "/quotes"
	collectionsPath = "/collections"
)

// Mirror is the in-memory copy of the two remote collections, scoped to one
// client session. The remote store stays the owner of record: ReloadAll
// replaces both maps wholesale, and everything else is an incremental patch
// applied by the mutation engine. The mirror is only ever touched from the
// single event-handling goroutine, so it carries no locking.
type Mirror struct {
	Quotes      map[domain.QuoteID]domain.Quote
	Collections map[domain.CollectionID]domain.Collection

	store  ports.RemoteStore
	logger *zap.Logger
	loaded bool
}

func NewMirror(store ports.RemoteStore, logger *zap.Logger) *Mirror {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Mirror{
		Quotes:      map[domain.QuoteID]domain.Quote{},
		Collections: map[domain.CollectionID]domain.Collection{},
		store:       store,
		logger:      logger,
	}
}

// IsEmpty reports whether the mirror has never been loaded.
func (m *Mirror) IsEmpty() bool {
	return !m.loaded
}

// ReloadAll discards both maps and reinstalls them from the store. A fetch
// failure installs an empty map for that domain; this is the reconciliation
// point, so local optimistic state does not survive it.
func (m *Mirror) ReloadAll(ctx context.Context) {
	quotes := map[domain.QuoteID]domain.Quote{}
	var rawQuotes map[string]domain.Quote
	if err := m.store.Fetch(ctx, quotesPath, &rawQuotes); err != nil {
		m.logger.Debug("reload quotes", zap.Error(err))
	} else {
		for id, quote := range rawQuotes {
			quote.ID = domain.QuoteID(id)
			quotes[quote.ID] = quote
		}
	}

	collections := map[domain.CollectionID]domain.Collection{}
	var rawCollections map[string]domain.Collection
	if err := m.store.Fetch(ctx, collectionsPath, &rawCollections); err != nil {
		m.logger.Debug("reload collections", zap.Error(err))
	} else {
		for id, collection := range rawCollections {
			collection.ID = domain.CollectionID(id)
			collections[collection.ID] = collection
		}
	}

	m.Quotes = quotes
	m.Collections = collections
	m.loaded = true
}

// The patch methods below are the only mutation paths besides ReloadAll.

func (m *Mirror) PutQuote(quote domain.Quote) {
	m.Quotes[quote.ID] = quote
}

func (m *Mirror) RemoveQuote(id domain.QuoteID) {
	delete(m.Quotes, id)
}

func (m *Mirror) PutCollection(collection domain.Collection) {
	m.Collections[collection.ID] = collection
}

// SetFavorite flips a single favorite membership key; it never replaces the
// whole map, mirroring the granular remote write.
func (m *Mirror) SetFavorite(id domain.QuoteID, user domain.UserID, favorited bool) {
	quote, ok := m.Quotes[id]
	if !ok {
		return
	}

	if favorited {
		if quote.FavoritedBy == nil {
			quote.FavoritedBy = map[domain.UserID]bool{}
		}
		quote.FavoritedBy[user] = true
	} else {
		delete(quote.FavoritedBy, user)
	}

	m.Quotes[id] = quote
}

// SetMembership flips a single collection membership key on one quote.
func (m *Mirror) SetMembership(id domain.QuoteID, collection domain.CollectionID, member bool) {
	quote, ok := m.Quotes[id]
	if !ok {
		return
	}

	if member {
		if quote.Collections == nil {
			quote.Collections = map[domain.CollectionID]bool{}
		}
		quote.Collections[collection] = true
	} else {
		delete(quote.Collections, collection)
	}

	m.Quotes[id] = quote
}
