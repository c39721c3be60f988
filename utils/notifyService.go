package utils

import (
	"courseadmin/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyLowRating posts an alert to the configured feedback webhook. Callers
// fire it in a goroutine: a dead webhook must never fail the user's request,
// so errors are only logged and nothing is retried.
func NotifyLowRating(rating int, comment string) {
	url := config.AppConfig.FeedbackWebhookURL
	if url == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":       "low_rating_feedback",
			"rating":      rating,
			"comment":     comment,
			"received_at": time.Now().Format(time.RFC3339),
		}).
		Post(url)
	if err != nil {
		log.Printf("Failed to deliver feedback alert: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Feedback alert rejected by webhook: %s", resp.Status())
	}
}
