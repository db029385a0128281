package models

// Message is a private message between two users. Read-only in the admin
// context; the messages section also receives freshly created ones back from
// send_message.
type Message struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	ReceiverID  string `json:"receiver_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type,omitempty"`
	CreatedAt   string `json:"created_at"`
	IsRead      bool   `json:"is_read"`
}
