package network

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

const defaultRequestTimeout = 30 * time.Second

type AsyncNetworkManager struct {
	Config       *models.MConfig
	ProxyManager interfaces.IProxyManager
	Client       *resty.Client
	Timeout      time.Duration // applied when a request sets none
	Logger       *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncNetworkManager(cfg *models.MConfig, log *logger.Logger) *AsyncNetworkManager {
	timeout := defaultRequestTimeout
	if cfg.Network.RequestTimeout > 0 {
		timeout = time.Duration(cfg.Network.RequestTimeout) * time.Second
	}

	nm := &AsyncNetworkManager{
		Config:       cfg,
		ProxyManager: helpers.NewProxyManager(cfg.Network.Proxies, cfg.Network.UserAgent, log),
		Timeout:      timeout,
		Logger:       log,
	}
	nm.Client = nm.createClient()
	return nm
}

// -----------------------------------------------------------------------------

func (nm *AsyncNetworkManager) createClient() *resty.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nm.ProxyManager.Proxy

	// Cookies are read per response and replayed by hand, so no jar.
	// No client-wide timeout: each request carries its own deadline.
	client := resty.New().
		SetTransport(transport).
		SetRetryCount(0).
		SetCookieJar(nil).
		SetHeader("User-Agent", nm.ProxyManager.GetUserAgent())

	client.OnAfterResponse(decompressMiddleware)
	return client
}

// -----------------------------------------------------------------------------

// GetText performs a single GET and returns the body as text.
func (nm *AsyncNetworkManager) GetText(ctx context.Context, url string, headers map[string]string) (string, error) {
	resp, err := nm.Fetch(ctx, models.MFetchRequest{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
	})
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("GET %s: bad status %d", url, resp.StatusCode)
	}
	return string(resp.Body), nil
}

// -----------------------------------------------------------------------------

// Fetch performs one request. Transport failures and cancellation are errors,
// any HTTP status is returned as is.
func (nm *AsyncNetworkManager) Fetch(ctx context.Context, fr models.MFetchRequest) (*models.MFetchResponse, error) {
	method := strings.ToUpper(fr.Method)
	if method == "" {
		method = http.MethodGet
	}

	timeout := fr.Timeout
	if timeout <= 0 {
		timeout = nm.Timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := nm.Client.R().SetContext(reqCtx)
	for k, v := range fr.Headers {
		req.SetHeader(k, v)
	}
	if fr.Body != "" {
		req.SetBody(fr.Body)
	}

	start := time.Now()
	resp, err := req.Execute(method, fr.URL)
	if err != nil {
		// Report the caller's own cancellation rather than the transport wrapper
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, fr.URL, ctxErr)
		}
		return nil, fmt.Errorf("%s %s: %w", method, fr.URL, err)
	}

	nm.Logger.Debug("%s %s -> %d (%d bytes, %s)", method, fr.URL, resp.StatusCode(), len(resp.Body()), time.Since(start))

	return &models.MFetchResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Cookies:    resp.Cookies(),
		Body:       resp.Body(),
	}, nil
}
