package helpers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-indexes/src/helpers"
	"market-indexes/src/logger"
)

func TestProxyManager_RoundRobin(t *testing.T) {
	t.Parallel()

	// Arrange
	pm := helpers.NewProxyManager([]string{"10.0.0.1:3128", "", "https://10.0.0.2:443", "ftp://bad"}, "", logger.NewLoggerTo(io.Discard, "proxy"))
	req, err := http.NewRequest(http.MethodGet, "https://finance.vietstock.vn/", nil)
	require.NoError(t, err)

	// Act
	var hosts []string
	for i := 0; i < 3; i++ {
		u, err := pm.Proxy(req)
		require.NoError(t, err)
		hosts = append(hosts, u.String())
	}

	// Assert
	assert.True(t, pm.HasProxies())
	assert.Equal(t, []string{"http://10.0.0.1:3128", "https://10.0.0.2:443", "http://10.0.0.1:3128"}, hosts)
	assert.Equal(t, helpers.DesktopUserAgent, pm.GetUserAgent())
}

func TestProxyManager_NoProxies(t *testing.T) {
	t.Parallel()

	pm := helpers.NewProxyManager(nil, "quotes-bot/1.0", logger.NewLoggerTo(io.Discard, "proxy"))

	current, err := pm.GetCurrentProxy()
	require.NoError(t, err)
	assert.Empty(t, current)
	assert.False(t, pm.HasProxies())
	assert.Equal(t, "quotes-bot/1.0", pm.GetUserAgent())

	pm.RotateProxy()
	current, _ = pm.GetCurrentProxy()
	assert.Empty(t, current)
}

func TestValidateAndFormatProxy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://127.0.0.1:8080", helpers.FormatProxy("127.0.0.1:8080"))
	assert.Equal(t, "socks5://127.0.0.1:1080", helpers.FormatProxy("socks5://127.0.0.1:1080"))

	assert.True(t, helpers.ValidateProxy("127.0.0.1:8080"))
	assert.True(t, helpers.ValidateProxy("socks5://127.0.0.1:1080"))
	assert.False(t, helpers.ValidateProxy("   "))
	assert.False(t, helpers.ValidateProxy("ftp://127.0.0.1:21"))
}
