package domain

type ChatMessage struct {
	ID   string `json:"-"`
	User string `json:"user"`
	Text string `json:"text"`
	TS   string `json:"ts"`
}
