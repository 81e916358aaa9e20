// Package telegram is the chat-platform side of the calculator: a minimal
// Bot API client for notifications and result sharing, plus validation of
// the Web App init data that identifies the user opening the mini-app.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIBaseURL is the production Bot API endpoint.
const APIBaseURL = "https://api.telegram.org"

// Config holds Bot API configuration.
type Config struct {
	Token       string
	AdminChatID string // chat notified about exports; optional
	ChannelID   string // channel required for access checks; optional
}

// Client is the Bot API client.
type Client struct {
	config     Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Bot API client.
func NewClient(cfg Config) *Client {
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    APIBaseURL,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// IsConfigured returns true when a bot token is set.
func (c *Client) IsConfigured() bool {
	return c.config.Token != ""
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.config.Token, method)
}

// apiResponse is the Bot API envelope.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, params url.Values, result any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("bot token not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method),
		strings.NewReader(params.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	return decodeAPIResponse(resp.Body, method, result)
}

func decodeAPIResponse(body io.Reader, method string, result any) error {
	var envelope apiResponse
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("%s: %s", method, envelope.Description)
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// SendMessage sends a Markdown-formatted message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	params := url.Values{}
	params.Set("chat_id", chatID)
	params.Set("text", text)
	params.Set("parse_mode", "Markdown")
	return c.call(ctx, "sendMessage", params, nil)
}

// SendDocument uploads a file to a chat with an optional caption.
func (c *Client) SendDocument(ctx context.Context, chatID, filename string, data []byte, caption string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("bot token not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", chatID); err != nil {
		return err
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return err
		}
	}
	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendDocument"), &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendDocument request failed: %w", err)
	}
	defer resp.Body.Close()

	return decodeAPIResponse(resp.Body, "sendDocument", nil)
}

// chatMember is the slice of getChatMember we care about.
type chatMember struct {
	Status string `json:"status"`
}

// IsChannelMember checks whether the user is subscribed to the configured
// channel. An unconfigured channel allows everyone; a Bot API failure
// blocks access, matching the bot's existing behavior.
func (c *Client) IsChannelMember(ctx context.Context, userID int64) (bool, error) {
	if c.config.ChannelID == "" {
		return true, nil
	}

	params := url.Values{}
	params.Set("chat_id", c.config.ChannelID)
	params.Set("user_id", fmt.Sprintf("%d", userID))

	var member chatMember
	if err := c.call(ctx, "getChatMember", params, &member); err != nil {
		return false, err
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true, nil
	default:
		return false, nil
	}
}

// NotifyAdmin sends a best-effort message to the admin chat. Failures are
// returned so the caller can log them; nothing else depends on delivery.
func (c *Client) NotifyAdmin(ctx context.Context, text string) error {
	if c.config.AdminChatID == "" {
		return nil
	}
	return c.SendMessage(ctx, c.config.AdminChatID, text)
}

// AdminChatID returns the configured admin chat, if any.
func (c *Client) AdminChatID() string {
	return c.config.AdminChatID
}
