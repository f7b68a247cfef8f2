package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Client sends push messages through the FCM HTTP v1 API using a Google
// service account for authentication.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient builds an FCM client from service account credentials JSON.
func NewClient(ctx context.Context, credentialsJSON []byte, projectID string) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FCM credentials: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, creds.TokenSource)
	httpClient.Timeout = 10 * time.Second

	return &Client{
		httpClient: httpClient,
		endpoint:   fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", projectID),
	}, nil
}

type message struct {
	Message struct {
		Token        string            `json:"token"`
		Notification notificationBody  `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
	} `json:"message"`
}

type notificationBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send delivers one notification to a device token.
func (c *Client) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	var msg message
	msg.Message.Token = deviceToken
	msg.Message.Notification = notificationBody{Title: title, Body: body}
	msg.Message.Data = data

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal FCM message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build FCM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("FCM returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
