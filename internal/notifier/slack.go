package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/treyhall/jobscout/internal/model"
)

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// SlackNotifier sends analysis alerts to a Slack channel via Incoming Webhooks.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier returns a notifier that posts each analysis to Slack via webhook.
func NewSlackNotifier(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify sends each analysis as a separate Slack message using Block Kit.
// Returns an error only if ALL messages fail. Individual failures are logged.
func (s *SlackNotifier) Notify(analyses []model.JobAnalysis) error {
	if len(analyses) == 0 {
		return nil
	}

	failures := 0
	for i, a := range analyses {
		if i > 0 {
			time.Sleep(500 * time.Millisecond)
		}

		if err := s.sendMessage(a); err != nil {
			s.logger.Error("slack notification failed", "company", a.Company, "title", a.Title, "error", err)
			failures++
		}
	}

	sent := len(analyses) - failures
	if failures == len(analyses) {
		return fmt.Errorf("all %d slack notifications failed", failures)
	}
	s.logger.Info("slack notifications complete", "sent", sent, "failed", failures)
	return nil
}

func (s *SlackNotifier) sendMessage(a model.JobAnalysis) error {
	payload := buildPayload(a)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := resp.Header.Get("Retry-After")
		secs, _ := strconv.Atoi(retryAfter)
		if secs <= 0 {
			secs = 1
		}
		s.logger.Warn("slack rate limited, retrying", "retry_after_secs", secs)
		time.Sleep(time.Duration(secs) * time.Second)

		resp2, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("post to slack (retry): %w", err)
		}
		defer resp2.Body.Close()

		if resp2.StatusCode != http.StatusOK {
			return fmt.Errorf("slack returned %d on retry", resp2.StatusCode)
		}
		s.logger.Info("slack message sent", "company", a.Company, "title", a.Title, "retried", true)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	s.logger.Info("slack message sent", "company", a.Company, "title", a.Title)
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string         `json:"type"`
	Text     *slackText     `json:"text,omitempty"`
	Fields   []slackText    `json:"fields,omitempty"`
	Elements []slackElement `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackElement struct {
	Type  string    `json:"type"`
	Text  slackText `json:"text"`
	URL   string    `json:"url"`
	Style string    `json:"style"`
}

// SendTestMessage sends a dummy analysis to verify the integration works.
func SendTestMessage(n model.Notifier) error {
	testAnalysis := model.JobAnalysis{
		JobID:               "test-001",
		Company:             "JobScout Test",
		Title:               "Test Notification — Integration Verified",
		Location:            "Everywhere",
		URL:                 "https://example.com/jobs/test",
		OverallRating:       100,
		SkillMatchScore:     100,
		CultureFitScore:     100,
		SuccessProbability:  100,
		OptimalTiming:       model.TimingImmediate,
		ApplicationStrategy: "This is a test notification.",
		AnalyzedAt:          time.Now().UTC(),
	}
	return n.Notify([]model.JobAnalysis{testAnalysis})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func buildPayload(a model.JobAnalysis) slackPayload {
	company := capitalize(a.Company)

	scoreText := fmt.Sprintf("*Overall:* %.0f   *Skills:* %.0f   *Culture:* %.0f   *Success:* %.0f%%",
		a.OverallRating,
		a.SkillMatchScore,
		a.CultureFitScore,
		a.SuccessProbability,
	)

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: "🎯 " + company + ": " + a.Title},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Location:*\n" + a.Location},
				{Type: "mrkdwn", Text: "*Apply:*\n" + string(a.OptimalTiming)},
			},
		},
		{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: scoreText},
		},
		{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: "*Strategy:* " + a.ApplicationStrategy},
		},
	}

	if len(a.CompetitiveAdvantages) > 0 {
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: "*Advantages:*\n• " + strings.Join(a.CompetitiveAdvantages, "\n• ")},
		})
	}

	blocks = append(blocks,
		slackBlock{
			Type: "actions",
			Elements: []slackElement{
				{
					Type:  "button",
					Text:  slackText{Type: "plain_text", Text: "View Posting"},
					URL:   a.URL,
					Style: "primary",
				},
			},
		},
		slackBlock{Type: "divider"},
	)

	return slackPayload{Blocks: blocks}
}
