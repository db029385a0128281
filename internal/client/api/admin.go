package api

import (
	"context"

	"github.com/setka-dev/setka/internal/client/models"
)

func (c *HTTPClient) GetUsers(ctx context.Context, adminToken string) ([]models.User, error) {
	req := struct {
		Action     string `json:"action"`
		AdminToken string `json:"admin_token"`
	}{"get_users", adminToken}

	var res struct {
		envelope
		Users []models.User `json:"users"`
		Total int           `json:"total"`
	}
	status, err := c.post(ctx, c.adminURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return res.Users, nil
}

func (c *HTTPClient) BanUser(ctx context.Context, adminToken, targetUserID, reason string) error {
	req := struct {
		Action       string `json:"action"`
		AdminToken   string `json:"admin_token"`
		TargetUserID string `json:"target_user_id"`
		Reason       string `json:"reason"`
	}{"ban_user", adminToken, targetUserID, reason}

	var res struct{ envelope }
	status, err := c.post(ctx, c.adminURL, req, &res)
	if err != nil {
		return err
	}
	if !res.Success {
		return failure(status, res.envelope)
	}
	return nil
}

func (c *HTTPClient) UnbanUser(ctx context.Context, adminToken, targetUserID string) error {
	req := struct {
		Action       string `json:"action"`
		AdminToken   string `json:"admin_token"`
		TargetUserID string `json:"target_user_id"`
	}{"unban_user", adminToken, targetUserID}

	var res struct{ envelope }
	status, err := c.post(ctx, c.adminURL, req, &res)
	if err != nil {
		return err
	}
	if !res.Success {
		return failure(status, res.envelope)
	}
	return nil
}

func (c *HTTPClient) ReadMessages(ctx context.Context, adminToken, user1ID, user2ID string) ([]models.Message, error) {
	req := struct {
		Action     string `json:"action"`
		AdminToken string `json:"admin_token"`
		User1ID    string `json:"user1_id"`
		User2ID    string `json:"user2_id"`
	}{"read_messages", adminToken, user1ID, user2ID}

	var res struct {
		envelope
		Messages []models.Message `json:"messages"`
	}
	status, err := c.post(ctx, c.adminURL, req, &res)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, failure(status, res.envelope)
	}
	return res.Messages, nil
}
