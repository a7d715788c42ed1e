package reputation

import (
	"context"
	"fmt"
	"net"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
	"github.com/oschwald/geoip2-golang"
)

const MaxMindProviderName = "maxmind"

type MaxMindConfig struct {
	ASNPath  string `mapstructure:"asn_path"`
	CityPath string `mapstructure:"city_path"`
}

// MaxMindProvider answers from local GeoLite2 ASN and City databases.
type MaxMindProvider struct {
	asn  *geoip2.Reader
	city *geoip2.Reader
}

func OpenMaxMind(cfg MaxMindConfig) (*MaxMindProvider, error) {
	asnDB, err := geoip2.Open(cfg.ASNPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ASN database: %w", err)
	}
	p := &MaxMindProvider{asn: asnDB}
	if cfg.CityPath != "" {
		cityDB, err := geoip2.Open(cfg.CityPath)
		if err != nil {
			_ = asnDB.Close()
			return nil, fmt.Errorf("failed to open City database: %w", err)
		}
		p.city = cityDB
	}
	return p, nil
}

func (p *MaxMindProvider) Name() string {
	return MaxMindProviderName
}

func (p *MaxMindProvider) Lookup(_ context.Context, ip string) (click.IPReputation, error) {
	netIP := net.ParseIP(ip)
	if netIP == nil {
		return click.FailedReputation(), fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	if p.asn == nil {
		return click.FailedReputation(), fmt.Errorf("%w: asn database not loaded", ErrLookupFailed)
	}

	record, err := p.asn.ASN(netIP)
	if err != nil {
		return click.FailedReputation(), fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if record.AutonomousSystemOrganization == "" {
		return click.FailedReputation(), fmt.Errorf("%w: no asn for %s", ErrLookupFailed, ip)
	}

	rep := click.IPReputation{
		ISP:    record.AutonomousSystemOrganization,
		Org:    record.AutonomousSystemOrganization,
		Status: click.ReputationSuccess,
		Source: MaxMindProviderName,
	}

	if p.city != nil {
		if city, err := p.city.City(netIP); err == nil {
			rep.Country = city.Country.Names["en"]
			rep.City = city.City.Names["en"]
			if len(city.Subdivisions) > 0 {
				rep.Region = city.Subdivisions[0].Names["en"]
			}
			rep.Lat = city.Location.Latitude
			rep.Lon = city.Location.Longitude
			rep.Proxy = city.Traits.IsAnonymousProxy
		}
	}
	return rep, nil
}

func (p *MaxMindProvider) Close() error {
	var err error
	if p.asn != nil {
		err = p.asn.Close()
	}
	if p.city != nil {
		if e := p.city.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
