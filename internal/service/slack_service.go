package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const slackAPIURL = "https://slack.com/api/chat.postMessage"

// submissionTimezone is the fixed zone used for the timestamp footer.
// Falls back to UTC when tzdata is unavailable.
var submissionTimezone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// SlackService delivers contact messages to a Slack channel
type SlackService struct {
	botToken  string
	channelID string
	apiURL    string
	client    *http.Client
}

// NewSlackService creates a new Slack service. Credentials are passed in
// explicitly so the service never reads ambient state.
func NewSlackService(botToken, channelID string) *SlackService {
	return &SlackService{
		botToken:  botToken,
		channelID: channelID,
		apiURL:    slackAPIURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// slackMessage represents a chat.postMessage request body
type slackMessage struct {
	Channel string       `json:"channel"`
	Text    string       `json:"text"`
	Blocks  []slackBlock `json:"blocks,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// slackResponse is the subset of the chat.postMessage response we care about
type slackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SendContactMessage formats a contact submission as a Block Kit message and
// posts it to the configured channel
func (s *SlackService) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if s.botToken == "" || s.channelID == "" {
		return ErrNotConfigured
	}

	submittedAt := msg.SubmittedAt.In(submissionTimezone).Format("2006-01-02 15:04:05 MST")

	payload := slackMessage{
		Channel: s.channelID,
		// Fallback text for notifications and clients that don't render blocks
		Text: fmt.Sprintf("New contact form submission from %s <%s>", msg.Name, msg.Email),
		Blocks: []slackBlock{
			{
				Type: "header",
				Text: &slackText{Type: "plain_text", Text: "New Contact Form Submission"},
			},
			{
				Type: "section",
				Fields: []slackText{
					{Type: "mrkdwn", Text: "*Name:*\n" + msg.Name},
					{Type: "mrkdwn", Text: "*Email:*\n" + msg.Email},
				},
			},
			{
				Type: "section",
				Text: &slackText{Type: "mrkdwn", Text: "*Message:*\n" + msg.Message},
			},
			{
				Type: "context",
				Elements: []slackText{
					{Type: "mrkdwn", Text: "Submitted at " + submittedAt},
				},
			},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.botToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack API returned status %d", resp.StatusCode)
	}

	// Slack reports most failures with a 200 status and ok:false
	var result slackResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode slack response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("slack API error: %s", result.Error)
	}

	return nil
}
