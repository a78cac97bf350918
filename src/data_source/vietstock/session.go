package vietstock

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

const (
	LanguageCookie = "language"
	SessionCookie  = "ASP.NET_SessionId"
	DefaultLocale  = "vi-VN"

	defaultBootstrapTimeout = 90 * time.Second
)

// -----------------------------------------------------------------------------

// SessionBootstrapper visits the landing page to collect the cookies and the
// anti-forgery token required by the trading-data endpoint.
type SessionBootstrapper struct {
	Network interfaces.INetworkManager
	Timeout time.Duration
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSessionBootstrapper(nm interfaces.INetworkManager, timeout time.Duration, log *logger.Logger) *SessionBootstrapper {
	if timeout <= 0 {
		timeout = defaultBootstrapTimeout
	}
	return &SessionBootstrapper{Network: nm, Timeout: timeout, Logger: log}
}

// -----------------------------------------------------------------------------

// Bootstrap never fails because a piece is missing: absent values come back
// empty (locale defaults to vi-VN). Only cancellation is returned as an error.
func (b *SessionBootstrapper) Bootstrap(ctx context.Context, targetHost string) (models.MQuoteSession, error) {
	session := models.MQuoteSession{Locale: DefaultLocale}

	resp, err := b.Network.Fetch(ctx, models.MFetchRequest{
		Method:  http.MethodGet,
		URL:     targetHost,
		Headers: map[string]string{"Accept": "text/html,application/xhtml+xml"},
		Timeout: b.Timeout,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return session, fmt.Errorf("bootstrap %s: %w", targetHost, ctxErr)
		}
		b.Logger.Warning("Landing page %s unreachable, continuing without session: %v", targetHost, err)
		return session, nil
	}

	if locale, ok := resp.Cookie(LanguageCookie); ok && locale != "" {
		session.Locale = locale
	}
	if id, ok := resp.Cookie(SessionCookie); ok {
		session.SessionID = id
	}
	if token, ok := ExtractToken(string(resp.Body), AntiForgeryField); ok {
		session.AntiForgeryToken = token
	} else {
		b.Logger.Debug("No %s found on %s (status %d)", AntiForgeryField, targetHost, resp.StatusCode)
	}

	return session, nil
}
