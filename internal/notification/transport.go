package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Transport delivers one text message to a phone number. Implementations
// wrap a single messaging provider.
type Transport interface {
	Name() string
	Send(ctx context.Context, to, body string) error
}

// MetaTransport sends WhatsApp messages through the Meta Cloud API.
type MetaTransport struct {
	phoneNumberID string
	accessToken   string
	client        *http.Client
	baseURL       string
}

func NewMetaTransport(phoneNumberID, accessToken string, client *http.Client) *MetaTransport {
	return &MetaTransport{
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		client:        client,
		baseURL:       "https://graph.facebook.com/v18.0",
	}
}

func (t *MetaTransport) Name() string { return "meta" }

func (t *MetaTransport) Send(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                strings.TrimPrefix(to, "+"),
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode message payload: %w", err)
	}

	apiURL := fmt.Sprintf("%s/%s/messages", t.baseURL, t.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("meta api error: %s", apiErr.Error.Message)
		}
		return fmt.Errorf("meta api returned status %d", resp.StatusCode)
	}
	return nil
}

// TwilioTransport sends WhatsApp messages through the Twilio REST API.
type TwilioTransport struct {
	accountSID string
	authToken  string
	fromNumber string
	client     *http.Client
	baseURL    string
}

func NewTwilioTransport(accountSID, authToken, fromNumber string, client *http.Client) *TwilioTransport {
	return &TwilioTransport{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     client,
		baseURL:    "https://api.twilio.com",
	}
}

func (t *TwilioTransport) Name() string { return "twilio" }

func (t *TwilioTransport) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("From", t.fromNumber)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	apiURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio api error: %s", apiErr.Message)
		}
		return fmt.Errorf("twilio api returned status %d", resp.StatusCode)
	}
	return nil
}

// ConsoleTransport logs the message instead of delivering it. It always
// succeeds, which keeps the pipeline usable in offline and dev setups.
type ConsoleTransport struct{}

func NewConsoleTransport() ConsoleTransport { return ConsoleTransport{} }

func (ConsoleTransport) Name() string { return "console" }

func (ConsoleTransport) Send(ctx context.Context, to, body string) error {
	log.Info().
		Str("to", to).
		Str("message", body).
		Msg("whatsapp notification (no provider configured)")
	return nil
}
