package node

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

const (
	defaultTimeout = 30 * time.Second
	probeEndpoint  = "get_blockchain_state"
)

// ClientConfig configures the HTTPS RPC connection to a full node.
type ClientConfig struct {
	URL                string
	CertFile           string
	KeyFile            string
	CAFile             string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Client is a Transport that posts JSON requests to the full node RPC endpoint.
type Client struct {
	cfg ClientConfig

	mu   sync.RWMutex
	http *resty.Client
}

// NewClient validates the configuration. The connection itself is built by Connect.
func NewClient(cfg ClientConfig) (*Client, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse full node url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("full node url scheme %q not supported, use https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("full node url missing host")
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("full node cert and key must be set together")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")

	return &Client{cfg: cfg}, nil
}

// Connect loads the TLS material and probes the node. The client is usable only after the first success.
func (c *Client) Connect(ctx context.Context) error {
	tlsConfig, err := c.tlsConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrNodeUnavailable, err)
	}

	client := resty.New().
		SetBaseURL(c.cfg.URL).
		SetTimeout(c.cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if tlsConfig != nil {
		client.SetTLSClientConfig(tlsConfig)
	}

	if _, err := post(ctx, client, probeEndpoint, struct{}{}); err != nil {
		return err
	}

	c.mu.Lock()
	c.http = client
	c.mu.Unlock()
	return nil
}

// Call posts the request to the endpoint and returns the raw response body.
func (c *Client) Call(ctx context.Context, endpoint string, request any) ([]byte, error) {
	c.mu.RLock()
	client := c.http
	c.mu.RUnlock()

	if client == nil {
		return nil, fmt.Errorf("%w: not connected", model.ErrNodeUnavailable)
	}
	return post(ctx, client, endpoint, request)
}

func post(ctx context.Context, client *resty.Client, endpoint string, request any) ([]byte, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetBody(request).
		Post("/" + endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", model.ErrNodeUnavailable, err)
	}
	if resp.IsError() {
		return nil, &model.UpstreamError{Message: fmt.Sprintf("http status %d", resp.StatusCode())}
	}
	return resp.Body(), nil
}

func (c *Client) tlsConfig() (*tls.Config, error) {
	if c.cfg.CertFile == "" && c.cfg.CAFile == "" && !c.cfg.InsecureSkipVerify {
		return nil, nil
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: c.cfg.InsecureSkipVerify, //nolint:gosec // node certificates are signed by a private CA
	}

	if c.cfg.CertFile != "" {
		pair, err := tls.LoadX509KeyPair(c.cfg.CertFile, c.cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client key pair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{pair}
	}

	if c.cfg.CAFile != "" {
		pem, err := os.ReadFile(c.cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca file %s has no certificates", c.cfg.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
