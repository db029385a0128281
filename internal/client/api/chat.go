package api

import (
	"context"

	"github.com/setka-dev/setka/internal/client/models"
)

func (c *HTTPClient) GetMessages(ctx context.Context, user1ID, user2ID string, limit int) ([]models.Message, error) {
	req := struct {
		Action  string `json:"action"`
		User1ID string `json:"user1_id"`
		User2ID string `json:"user2_id"`
		Limit   int    `json:"limit"`
	}{"get_messages", user1ID, user2ID, limit}

	var res struct {
		envelope
		Messages []models.Message `json:"messages"`
	}
	status, err := c.post(ctx, c.chatURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return res.Messages, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	req := struct {
		Action     string `json:"action"`
		SenderID   string `json:"sender_id"`
		ReceiverID string `json:"receiver_id"`
		Content    string `json:"content"`
	}{"send_message", senderID, receiverID, content}

	var res struct {
		envelope
		Message models.Message `json:"message"`
	}
	status, err := c.post(ctx, c.chatURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return &res.Message, nil
}

// MarkRead flags everything the reader received from the sender as read.
func (c *HTTPClient) MarkRead(ctx context.Context, readerID, senderID string) error {
	req := struct {
		Action  string `json:"action"`
		User1ID string `json:"user1_id"`
		User2ID string `json:"user2_id"`
	}{"mark_read", readerID, senderID}

	var res struct{ envelope }
	status, err := c.post(ctx, c.chatURL, req, &res)
	if err != nil {
		return err
	}
	if !res.Success {
		return failure(status, res.envelope)
	}
	return nil
}
