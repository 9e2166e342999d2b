package domain

type Collection struct {
	ID        CollectionID `json:"-"`
	Name      string       `json:"name"`
	CreatedAt string       `json:"created_at"`
}
