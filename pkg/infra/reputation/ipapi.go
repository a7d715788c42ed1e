package reputation

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/httpx"
	"github.com/valyala/fastjson"
)

const (
	IPAPIProviderName   = "ip-api"
	DefaultIPAPIBaseURL = "http://ip-api.com"
	ipAPIFields         = "status,message,country,regionName,city,lat,lon,isp,org,proxy,hosting,mobile,query"
)

type IPAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type ipAPIProvider struct {
	client     httpx.Client
	cfg        IPAPIConfig
	parserPool fastjson.ParserPool
}

func NewIPAPIProvider(client httpx.Client, cfg IPAPIConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultIPAPIBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &ipAPIProvider{client: client, cfg: cfg}
}

func (p *ipAPIProvider) Name() string {
	return IPAPIProviderName
}

func (p *ipAPIProvider) Lookup(ctx context.Context, ip string) (click.IPReputation, error) {
	if net.ParseIP(ip) == nil {
		return click.FailedReputation(), fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}

	q := url.Values{}
	q.Set("fields", ipAPIFields)
	if p.cfg.APIKey != "" {
		q.Set("key", p.cfg.APIKey)
	}
	resp, err := p.client.Do(ctx, &httpx.Request{
		Method:  http.MethodGet,
		URL:     fmt.Sprintf("%s/json/%s?%s", p.cfg.BaseURL, url.PathEscape(ip), q.Encode()),
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return click.FailedReputation(), fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return click.FailedReputation(), fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	parser := p.parserPool.Get()
	defer p.parserPool.Put(parser)

	v, err := parser.ParseBytes(resp.Body)
	if err != nil {
		return click.FailedReputation(), fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if status := string(v.GetStringBytes("status")); status != string(click.ReputationSuccess) {
		return click.FailedReputation(), fmt.Errorf("%w: %s", ErrLookupFailed, v.GetStringBytes("message"))
	}

	return click.IPReputation{
		ISP:     string(v.GetStringBytes("isp")),
		Org:     string(v.GetStringBytes("org")),
		Country: string(v.GetStringBytes("country")),
		Region:  string(v.GetStringBytes("regionName")),
		City:    string(v.GetStringBytes("city")),
		Lat:     v.GetFloat64("lat"),
		Lon:     v.GetFloat64("lon"),
		Proxy:   v.GetBool("proxy"),
		Hosting: v.GetBool("hosting"),
		Mobile:  v.GetBool("mobile"),
		Status:  click.ReputationSuccess,
		Source:  IPAPIProviderName,
	}, nil
}
