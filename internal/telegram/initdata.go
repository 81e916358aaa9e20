package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// WebAppUser is the user object embedded in Web App init data.
type WebAppUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// DisplayName is the user's first name, falling back to the username.
func (u WebAppUser) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// ValidateInitData verifies the HMAC signature Telegram attaches to Web App
// init data and returns the embedded user. The secret key is
// HMAC-SHA256(bot token) keyed with the literal "WebAppData", per the Bot
// API docs.
func (c *Client) ValidateInitData(initData string) (WebAppUser, error) {
	var user WebAppUser
	if !c.IsConfigured() {
		return user, fmt.Errorf("bot token not configured")
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return user, fmt.Errorf("malformed init data: %w", err)
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" {
		return user, fmt.Errorf("init data has no hash")
	}

	// Data-check string: every field except hash, sorted, joined by newlines.
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(c.config.Token))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(receivedHash)) {
		return user, fmt.Errorf("init data signature mismatch")
	}

	if raw := values.Get("user"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return user, fmt.Errorf("failed to decode init data user: %w", err)
		}
	}
	return user, nil
}
