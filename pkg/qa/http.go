package qa

import (
	"context"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/getzep/csmentor/internal"
)

const (
	retryWaitMin = 200 * time.Millisecond
	retryWaitMax = 2 * time.Second
)

// NewRetryableHTTPClient returns the client used to reach the QA server.
// Connection errors and 5xx replies are retried up to retryMax times with
// short backoff; once retries are exhausted the last reply is handed back so
// the caller can report its status. Every request is traced.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.HTTPClient.Timeout = timeout
	client.Logger = internal.NewLeveledLogrus(log)
	client.Backoff = retryablehttp.DefaultBackoff
	client.CheckRetry = retryPolicy
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &http.Client{
		Transport: otelhttp.NewTransport(
			client.StandardClient().Transport,
			otelhttp.WithClientTrace(func(ctx context.Context) *httptrace.ClientTrace {
				return otelhttptrace.NewClientTrace(ctx)
			}),
		),
	}
}

// retryPolicy stops as soon as the request context is done.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
