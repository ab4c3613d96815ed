package card

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hooklift/gowsdl/soap"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/logger"
	"github.com/mobil-koeln/crtm-cli/internal/observability"
)

const defaultTimeout = 15 * time.Second

// Balance is the result of a card balance query
type Balance struct {
	Status   int      `json:"status"`
	CardInfo *Element `json:"card_info"`
}

// Client queries the fare card balance service
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        logger.Logger
	metrics    *observability.Metrics
}

// Option configures the Client
type Option func(*Client)

// WithEndpoint points the client at another service URL
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for SOAP calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics counts balance calls
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a card balance client
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   ServiceURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Balance returns the balance document of the card with the given TTP number.
// Every call opens a new SOAP session.
func (c *Client) Balance(ctx context.Context, ttpNumber string) (balance *Balance, err error) {
	if ttpNumber == "" {
		return nil, api.ErrMissingField("sNumeroTTP")
	}

	start := time.Now()
	defer func() {
		c.metrics.ObserveCard(err)
		c.log.Debug("card balance", "duration", time.Since(start), "error", err)
	}()

	service := NewVentaPrepagoTitulo(soap.NewClient(c.endpoint, soap.WithHTTPClient(c.httpClient)))
	resp, err := service.ConsultaSaldo1Context(ctx, &ConsultaSaldo1{SNumeroTTP: ttpNumber})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w: %w", api.ErrTransport, api.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: ConsultaSaldo1: %w", api.ErrTransport, err)
	}
	if resp.ConsultaSaldo1Result == nil {
		return nil, fmt.Errorf("%w: ConsultaSaldo1: empty result", api.ErrTransport)
	}

	result := resp.ConsultaSaldo1Result
	info, err := ParseXML(strings.NewReader(result.SResulXMLField))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: card document: %w", api.ErrTransport, api.ErrInvalidResponse, err)
	}

	return &Balance{Status: result.ICallLogField, CardInfo: info}, nil
}
