package apodimpl

import (
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/apod-telegram-bot/internal/apod"
	"github.com/orgball2608/apod-telegram-bot/pkg/config"
	"github.com/orgball2608/apod-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "https://api.nasa.gov/planetary/apod"
	userAgent      = "apod-telegram-bot/1.0"

	// DefaultAPIKey is NASA's public demo key, rate limited upstream.
	DefaultAPIKey = "DEMO_KEY"

	keepAliveInterval = 60 * time.Second
	// The timeout covers the image download, not just the JSON request,
	// so it is set on the client as a whole.
	requestTimeout = 5 * time.Minute
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type ApodImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Logger
}

func New(opts Opts) *ApodImpl {
	apiKey := opts.Config.Nasa.ApiKey
	if apiKey == "" {
		opts.Logger.Warn("No api key found in config. Using DEMO_KEY")
		apiKey = DefaultAPIKey
	}

	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: keepAliveInterval,
			}).DialContext,
		},
	}

	return &ApodImpl{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		logger:     opts.Logger,
	}
}

var _ apod.Client = (*ApodImpl)(nil)
