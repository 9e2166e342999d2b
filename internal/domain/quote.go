package domain

type QuoteID string

type CollectionID string

type UserID string

// Quote is one saved quote. The ID is the store-assigned key and is not part
// of the JSON value; membership maps use presence as the relation (a key is
// either present with value true or absent).
type Quote struct {
	ID          QuoteID               `json:"-"`
	Text        string                `json:"text"`
	Author      string                `json:"author"`
	CreatedAt   string                `json:"created_at"`
	FavoritedBy map[UserID]bool       `json:"fav_by,omitempty"`
	Collections map[CollectionID]bool `json:"collections,omitempty"`
}

func (q Quote) FavoritedByUser(user UserID) bool {
	return q.FavoritedBy[user]
}

func (q Quote) InCollection(id CollectionID) bool {
	return q.Collections[id]
}
