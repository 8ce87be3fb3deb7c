package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTP is a vault that POSTs the document to a backup endpoint.
//
// The endpoint receives the raw JSON document with the backup name in the
// X-Backup-Name header, and answers with {"key": "..."}.
type HTTP struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

// NewHTTP returns a vault posting to url.
func NewHTTP(url string, logger *zap.Logger) *HTTP {
	client := resty.New().
		SetHeader("content-type", "application/json").
		SetTimeout(30 * time.Second).
		SetRetryCount(2)
	return &HTTP{client: client, url: url, logger: logger}
}

type pushResponse struct {
	Key string `json:"key"`
}

func (h *HTTP) Push(ctx context.Context, name string, doc []byte) (string, error) {
	if h.url == "" {
		return "", errors.New("vault url is not set")
	}
	var body pushResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Backup-Name", name).
		SetBody(doc).
		SetResult(&body).
		Post(h.url)
	if err != nil {
		return "", fmt.Errorf("vault push: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("vault error: %s: %s", resp.Status(), resp.String())
	}
	if body.Key == "" {
		return "", fmt.Errorf("vault returned no key")
	}
	logger(h.logger).Info("backup pushed", zap.String("url", h.url), zap.String("key", body.Key))
	return body.Key, nil
}
