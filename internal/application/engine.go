package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/quotevault-cli/internal/domain"
	"github.com/bnema/quotevault-cli/internal/ports"
)

const chatPath = "/chat"

// Engine applies every mutation to the local mirror first and then issues
// the matching remote write. Remote failures are tolerated: the mirror keeps
// the local intent and the next Refresh is the reconciliation point. The two
// create operations are the exception, since a mirror entry needs the
// store-assigned id.
type Engine struct {
	store  ports.RemoteStore
	mirror *Mirror
	clock  ports.Clock
	logger *zap.Logger
}

func NewEngine(store ports.RemoteStore, mirror *Mirror, clock ports.Clock, logger *zap.Logger) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		store:  store,
		mirror: mirror,
		clock:  clock,
		logger: logger,
	}
}

func (e *Engine) Mirror() *Mirror {
	return e.mirror
}

// Refresh discards the mirror and reloads it wholesale. This is the only
// operation that corrects drift from failed writes or other sessions.
func (e *Engine) Refresh(ctx context.Context) {
	e.mirror.ReloadAll(ctx)
}

// AddQuote creates a quote remotely and installs it in the mirror under the
// store-assigned id. When no id comes back the mirror stays untouched; a
// placeholder under an invented key would collide with reconciliation.
func (e *Engine) AddQuote(ctx context.Context, session *domain.Session, text, author string) (domain.Quote, error) {
	_ = session

	quote := domain.Quote{
		Text:      strings.TrimSpace(text),
		Author:    strings.TrimSpace(author),
		CreatedAt: domain.WireTime(e.clock.Now()),
	}

	id, err := e.store.Create(ctx, quotesPath, quote)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("create quote: %w", err)
	}

	quote.ID = domain.QuoteID(id)
	e.mirror.PutQuote(quote)

	return quote, nil
}

// RequestDelete records a pending delete intent on the session without
// touching the mirror or the store.
func (e *Engine) RequestDelete(session *domain.Session, id domain.QuoteID) error {
	quote, ok := e.mirror.Quotes[id]
	if !ok {
		return fmt.Errorf("request delete %s: %w", id, domain.ErrQuoteNotFound)
	}

	session.PendingDelete = &domain.PendingDelete{
		QuoteID: id,
		Label:   quoteLabel(quote),
	}

	return nil
}

// ConfirmDelete removes the pending quote from the mirror and deletes its
// whole subtree remotely, membership maps included. The remote result is
// not consulted.
func (e *Engine) ConfirmDelete(ctx context.Context, session *domain.Session) error {
	pending := session.PendingDelete
	if pending == nil {
		return domain.ErrNoPendingDelete
	}
	session.PendingDelete = nil

	e.mirror.RemoveQuote(pending.QuoteID)

	if err := e.store.Delete(ctx, quotesPath+"/"+string(pending.QuoteID)); err != nil {
		e.logger.Debug("delete quote", zap.String("id", string(pending.QuoteID)), zap.Error(err))
	}

	return nil
}

// CancelDelete clears the pending intent with no local or remote effect.
func (e *Engine) CancelDelete(session *domain.Session) {
	session.PendingDelete = nil
}

// ToggleFavorite flips the session user's presence in one quote's favorite
// map. The remote write targets the single membership key, never the whole
// map, so concurrent favorites from other sessions are not clobbered.
func (e *Engine) ToggleFavorite(ctx context.Context, session *domain.Session, id domain.QuoteID) (bool, error) {
	quote, ok := e.mirror.Quotes[id]
	if !ok {
		return false, fmt.Errorf("toggle favorite %s: %w", id, domain.ErrQuoteNotFound)
	}

	favorited := !quote.FavoritedByUser(session.UserID)
	e.mirror.SetFavorite(id, session.UserID, favorited)

	path := quotesPath + "/" + string(id) + "/fav_by/" + string(session.UserID)
	var err error
	if favorited {
		err = e.store.Set(ctx, path, true)
	} else {
		err = e.store.Delete(ctx, path)
	}
	if err != nil {
		e.logger.Debug("toggle favorite", zap.String("path", path), zap.Error(err))
	}

	return favorited, nil
}

// SetCollections reconciles one quote's collection membership to the desired
// set: the symmetric difference against the mirror becomes one granular
// write per changed key. The applied additions and removals are returned in
// deterministic order.
func (e *Engine) SetCollections(ctx context.Context, id domain.QuoteID, desired map[domain.CollectionID]bool) ([]domain.CollectionID, []domain.CollectionID, error) {
	quote, ok := e.mirror.Quotes[id]
	if !ok {
		return nil, nil, fmt.Errorf("set collections %s: %w", id, domain.ErrQuoteNotFound)
	}

	var added, removed []domain.CollectionID
	for collection, want := range desired {
		if want && !quote.InCollection(collection) {
			added = append(added, collection)
		}
	}
	for collection := range quote.Collections {
		if !desired[collection] {
			removed = append(removed, collection)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })

	for _, collection := range added {
		e.mirror.SetMembership(id, collection, true)
		path := membershipPath(id, collection)
		if err := e.store.Set(ctx, path, true); err != nil {
			e.logger.Debug("add membership", zap.String("path", path), zap.Error(err))
		}
	}
	for _, collection := range removed {
		e.mirror.SetMembership(id, collection, false)
		path := membershipPath(id, collection)
		if err := e.store.Delete(ctx, path); err != nil {
			e.logger.Debug("remove membership", zap.String("path", path), zap.Error(err))
		}
	}

	return added, removed, nil
}

// AddCollection creates a named collection; like AddQuote, the mirror entry
// exists only once the store has assigned an id.
func (e *Engine) AddCollection(ctx context.Context, name string) (domain.Collection, error) {
	collection := domain.Collection{
		Name:      strings.TrimSpace(name),
		CreatedAt: domain.WireTime(e.clock.Now()),
	}

	id, err := e.store.Create(ctx, collectionsPath, collection)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	collection.ID = domain.CollectionID(id)
	e.mirror.PutCollection(collection)

	return collection, nil
}

// LoadChat fetches the chat log fresh each call. Chat is reloaded on a timer
// by the hosting surface, so it is never mirrored optimistically; any local
// state would be discarded by the next tick anyway.
func (e *Engine) LoadChat(ctx context.Context) []domain.ChatMessage {
	var raw map[string]domain.ChatMessage
	if err := e.store.Fetch(ctx, chatPath, &raw); err != nil {
		e.logger.Debug("load chat", zap.Error(err))
		return nil
	}

	messages := make([]domain.ChatMessage, 0, len(raw))
	for id, message := range raw {
		message.ID = id
		messages = append(messages, message)
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].TS != messages[j].TS {
			return messages[i].TS < messages[j].TS
		}
		return messages[i].ID < messages[j].ID
	})

	return messages
}

// SendMessage posts a chat message fire-and-forget; the next poll shows it.
func (e *Engine) SendMessage(ctx context.Context, session *domain.Session, text string) error {
	username := strings.TrimSpace(session.Username)
	if username == "" {
		return domain.ErrUsernameNotSet
	}

	message := domain.ChatMessage{
		User: username,
		Text: strings.TrimSpace(text),
		TS:   domain.WireTime(e.clock.Now()),
	}

	if _, err := e.store.Create(ctx, chatPath, message); err != nil {
		e.logger.Debug("send message", zap.Error(err))
	}

	return nil
}

func membershipPath(id domain.QuoteID, collection domain.CollectionID) string {
	return quotesPath + "/" + string(id) + "/collections/" + string(collection)
}

func quoteLabel(quote domain.Quote) string {
	label := "“" + CleanQuoteText(quote.Text) + "”"
	if author := strings.TrimSpace(quote.Author); author != "" {
		label += " — " + author
	}
	return label
}
