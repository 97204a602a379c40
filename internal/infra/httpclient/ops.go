package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/wirelance/wirelance/internal/config"
	"go.uber.org/zap"
)

// OpsClient posts operational alerts to a webhook. It is the "page a
// human" half of error handling: domain errors are still returned to
// the caller, this channel only mirrors them to the on-call feed.
type OpsClient struct {
	WebhookURL string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewOpsClient(cfg *config.Config, log *zap.Logger) *OpsClient {
	return &OpsClient{
		WebhookURL: cfg.Ops.WebhookURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Logger: log,
	}
}

type opsAlert struct {
	Level   string `json:"level"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

// SendError mirrors an error to the ops webhook. Delivery failures are
// logged and swallowed: alerting must never fail the business call.
func (c *OpsClient) SendError(ctx context.Context, source string, err error) {
	if c.WebhookURL == "" || err == nil {
		return
	}
	c.send(ctx, opsAlert{Level: "error", Source: source, Message: err.Error()})
}

// SendWarning mirrors a workflow-gate warning to the ops webhook.
func (c *OpsClient) SendWarning(ctx context.Context, source, message string) {
	if c.WebhookURL == "" {
		return
	}
	c.send(ctx, opsAlert{Level: "warning", Source: source, Message: message})
}

func (c *OpsClient) send(ctx context.Context, alert opsAlert) {
	body, err := sonic.Marshal(alert)
	if err != nil {
		c.Logger.Sugar().Errorw("ops alert encode failed", "err", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(body))
	if err != nil {
		c.Logger.Sugar().Errorw("ops alert request failed", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Sugar().Errorw("ops alert delivery failed", "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.Logger.Sugar().Errorw("ops alert rejected",
			"err", fmt.Errorf("webhook returned %d", resp.StatusCode))
	}
}
