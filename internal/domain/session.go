package domain

// Session carries the per-invocation identity and transient UI intent. It is
// created by the hosting surface and passed to operations explicitly; nothing
// in the core holds it as package state.
type Session struct {
	UserID        UserID
	Username      string
	PendingDelete *PendingDelete
}

// PendingDelete records a delete request awaiting confirmation. Nothing is
// removed, locally or remotely, until the intent is confirmed.
type PendingDelete struct {
	QuoteID QuoteID
	Label   string
}
