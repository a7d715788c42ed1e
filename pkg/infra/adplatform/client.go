package adplatform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
	"golang.org/x/time/rate"
)

var (
	ErrRejected    = errors.New("ad platform rejected the request")
	ErrUnavailable = errors.New("ad platform unavailable")
)

// Operation is the ad platform's acknowledgement of a block or unblock.
// AlreadyExists is set when the platform already had the target in the
// requested state.
type Operation struct {
	ID            string `json:"operation_id"`
	AlreadyExists bool   `json:"already_exists"`
}

type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	DeveloperToken string        `mapstructure:"developer_token"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RatePerSecond  float64       `mapstructure:"rate_per_second"`
	Burst          int           `mapstructure:"burst"`
	BreakerTimeout time.Duration `mapstructure:"breaker_timeout"`
	MaxFailures    uint32        `mapstructure:"max_failures"`
}

// Client blocks and unblocks IPs or CIDR ranges on an advertiser account.
// Both calls are idempotent from the caller's side.
//
//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Block(ctx context.Context, accountRef, target string) (Operation, error)
	Unblock(ctx context.Context, accountRef, target string) (Operation, error)
}

type restClient struct {
	logger     *logrus.Logger
	cfg        Config
	http       httpx.Client
	breaker    httpx.CircuitBreaker
	limiter    *rate.Limiter
	parserPool fastjson.ParserPool
}

func NewRESTClient(logger *logrus.Logger, cfg Config, client httpx.Client, breaker httpx.CircuitBreaker) Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &restClient{
		logger:  logger,
		cfg:     cfg,
		http:    client,
		breaker: breaker,
		limiter: rate.NewLimiter(limit, cfg.Burst),
	}
}

type ipBlockRequest struct {
	IPBlock struct {
		IPAddress string `json:"ip_address"`
	} `json:"ip_block"`
}

func (c *restClient) Block(ctx context.Context, accountRef, target string) (Operation, error) {
	var body ipBlockRequest
	body.IPBlock.IPAddress = target
	data, err := json.Marshal(body)
	if err != nil {
		return Operation{}, fmt.Errorf("failed to marshal block request: %w", err)
	}
	return c.call(ctx, &httpx.Request{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("%s/v1/accounts/%s/ip-blocks", c.cfg.BaseURL, url.PathEscape(accountRef)),
		Body:   data,
	}, http.StatusConflict)
}

func (c *restClient) Unblock(ctx context.Context, accountRef, target string) (Operation, error) {
	q := url.Values{}
	q.Set("ip_address", target)
	return c.call(ctx, &httpx.Request{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("%s/v1/accounts/%s/ip-blocks?%s", c.cfg.BaseURL, url.PathEscape(accountRef), q.Encode()),
	}, http.StatusNotFound)
}

// call runs req through the limiter and the breaker. existsStatus is the
// status meaning the platform is already in the requested state.
func (c *restClient) call(ctx context.Context, req *httpx.Request, existsStatus int) (Operation, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Operation{}, fmt.Errorf("rate limiter: %w", err)
	}
	req.Headers = map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"Authorization": "Bearer " + c.cfg.Token,
	}
	if c.cfg.DeveloperToken != "" {
		req.Headers["Developer-Token"] = c.cfg.DeveloperToken
	}

	var op Operation
	exec := func() error {
		resp, err := c.http.Do(ctx, req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		op, err = c.interpret(resp, existsStatus)
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(exec)
	} else {
		err = exec()
	}
	if err != nil {
		return Operation{}, err
	}
	return op, nil
}

func (c *restClient) interpret(resp *httpx.Response, existsStatus int) (Operation, error) {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return Operation{ID: c.operationID(resp.Body)}, nil
	case resp.StatusCode == existsStatus, alreadyExists(resp.Body):
		return Operation{ID: c.operationID(resp.Body), AlreadyExists: true}, nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return Operation{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return Operation{}, errors.Join(httpx.ErrPermanent, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, truncate(resp.Body)))
	}
}

func (c *restClient) operationID(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	p := c.parserPool.Get()
	defer c.parserPool.Put(p)
	v, err := p.ParseBytes(body)
	if err != nil {
		return ""
	}
	return string(v.GetStringBytes("operation_id"))
}

func alreadyExists(body []byte) bool {
	return strings.Contains(strings.ToLower(string(body)), "already exists")
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
