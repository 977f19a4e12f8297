package adapter

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/Arteiii/authly/internal/config"
	myHTTP "github.com/Arteiii/authly/internal/handler/http"
	"github.com/Arteiii/authly/internal/logger"
	"github.com/Arteiii/authly/internal/utils"
)

// expectedLinks maps every redirect path to its permanent target.
var expectedLinks = map[string]string{
	"/link/wiki":   myHTTP.WikiURL,
	"/link/github": myHTTP.GitHubURL,
}

type httpServerProbe struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerProbe constructs an HTTP implementation of [ServerProbe]
// targeting cfg.BaseURL. Returns an error if the base URL cannot be parsed.
func NewHTTPServerProbe(cfg config.ProbeConfig, logger *logger.Logger) (ServerProbe, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w", err)
	}

	return &httpServerProbe{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (p *httpServerProbe) Index(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get("/")
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	if err = mapHTTPError(resp, http.StatusOK); err != nil {
		return fmt.Errorf("index: %w", err)
	}

	contentType := resp.Header().Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "text/html" {
		return fmt.Errorf("index: %w: %q", ErrUnexpectedContentType, contentType)
	}

	p.logger.Debug().Int("size", len(resp.Body())).Msg("index ok")
	return nil
}

func (p *httpServerProbe) Link(ctx context.Context, path string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("link %s request: %w", path, err)
	}
	if err = mapHTTPError(resp, http.StatusMovedPermanently); err != nil {
		return "", fmt.Errorf("link %s: %w", path, err)
	}

	return resp.Header().Get("Location"), nil
}

func (p *httpServerProbe) Check(ctx context.Context) error {
	var errs []error

	if err := p.Index(ctx); err != nil {
		errs = append(errs, err)
	}

	for path, want := range expectedLinks {
		got, err := p.Link(ctx, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if got != want {
			errs = append(errs, fmt.Errorf("link %s: %w: want %q, got %q", path, ErrUnexpectedLocation, want, got))
			continue
		}

		p.logger.Debug().Str("path", path).Str("location", got).Msg("link ok")
	}

	return errors.Join(errs...)
}
