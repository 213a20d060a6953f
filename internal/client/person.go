package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// BanPerson bans or unbans a user from the instance.
func (c *Client) BanPerson(ctx context.Context, ban bool, personID int64, expires *int64, reason *string, removeData *bool) (json.RawMessage, error) {
	return c.post(ctx, "/user/ban", Params{
		"ban":         ban,
		"person_id":   personID,
		"expires":     expires,
		"reason":      reason,
		"remove_data": removeData,
	})
}

// BlockPerson blocks a user for the current user.
func (c *Client) BlockPerson(ctx context.Context, block bool, personID int64) (json.RawMessage, error) {
	return c.post(ctx, "/user/block", Params{
		"block":     block,
		"person_id": personID,
	})
}

// ChangePassword changes the password of the currently-logged-in user.
func (c *Client) ChangePassword(ctx context.Context, newPassword, newPasswordVerify, oldPassword string) (json.RawMessage, error) {
	return c.put(ctx, "/user/change_password", Params{
		"new_password":        newPassword,
		"new_password_verify": newPasswordVerify,
		"old_password":        oldPassword,
	})
}

// DeleteAccount deletes the currently-logged-in account.
func (c *Client) DeleteAccount(ctx context.Context, password string) (json.RawMessage, error) {
	return c.post(ctx, "/user/delete_account", Params{"password": password})
}

// GetBannedPersons lists users banned from the instance.
func (c *Client) GetBannedPersons(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/user/banned", nil)
}

// GetCaptcha fetches a registration captcha.
func (c *Client) GetCaptcha(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/user/get_captcha", nil)
}

// GetPersonDetails obtains profile information and activity for a user.
func (c *Client) GetPersonDetails(ctx context.Context, form GetPersonDetailsForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/user", params)
}

// GetPersonMentions lists comments mentioning the current user.
func (c *Client) GetPersonMentions(ctx context.Context, limit, page *int64, sort *string, unreadOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/user/mention", Params{
		"limit":       limit,
		"page":        page,
		"sort":        sort,
		"unread_only": unreadOnly,
	})
}

// GetReplies lists replies to the current user.
func (c *Client) GetReplies(ctx context.Context, limit, page *int64, sort *string, unreadOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/user/replies", Params{
		"limit":       limit,
		"page":        page,
		"sort":        sort,
		"unread_only": unreadOnly,
	})
}

// GetReportCount returns the number of open reports.
func (c *Client) GetReportCount(ctx context.Context, communityID *int64) (json.RawMessage, error) {
	return c.get(ctx, "/user/report_count", Params{"community_id": communityID})
}

// GetUnreadCount returns the number of unread notifications.
func (c *Client) GetUnreadCount(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/user/unread_count", nil)
}

// LeaveAdmin removes the current user from the admin group.
func (c *Client) LeaveAdmin(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "/user/leave_admin", nil)
}

// Login authenticates with the instance and returns the bare access token
// unwrapped from the response's jwt field.
func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	resp, err := c.post(ctx, "/user/login", Params{
		"username_or_email": usernameOrEmail,
		"password":          password,
	})
	if err != nil {
		return "", err
	}
	var login struct {
		JWT string `json:"jwt"`
	}
	if err := c.deJSON(resp, &login); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return login.JWT, nil
}

// MarkAllAsRead marks all notifications as read.
func (c *Client) MarkAllAsRead(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "/user/mark_all_as_read", nil)
}

// MarkPersonMentionAsRead marks a mention as read.
func (c *Client) MarkPersonMentionAsRead(ctx context.Context, personMentionID int64, read bool) (json.RawMessage, error) {
	return c.post(ctx, "/user/mention/mark_as_read", Params{
		"person_mention_id": personMentionID,
		"read":              read,
	})
}

// PasswordChangeAfterReset sets a new password using a reset token.
func (c *Client) PasswordChangeAfterReset(ctx context.Context, password, passwordVerify, token string) (json.RawMessage, error) {
	return c.post(ctx, "/user/password_change", Params{
		"password":        password,
		"password_verify": passwordVerify,
		"token":           token,
	})
}

// PasswordReset sends a password reset form to the user's email.
func (c *Client) PasswordReset(ctx context.Context, email string) (json.RawMessage, error) {
	return c.post(ctx, "/user/password_reset", Params{"email": email})
}

// Register registers a new user.
func (c *Client) Register(ctx context.Context, form RegisterForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "/user/register", params)
}

// SaveUserSettings updates preferences for the currently-logged-in user.
func (c *Client) SaveUserSettings(ctx context.Context, form UserSettingsForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "/user/save_user_settings", params)
}

// VerifyEmail verifies a user email using the mailed token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (json.RawMessage, error) {
	return c.post(ctx, "/user/verify_email", Params{"token": token})
}
