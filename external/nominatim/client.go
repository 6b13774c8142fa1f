package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const userAgent = "hojattop-api/1.0"

type QueryResult struct {
	PlaceID     int     `json:"place_id"`
	OSMType     string  `json:"osm_type"`
	OSMID       int     `json:"osm_id"`
	Latitude    float64 `json:"lat,string"`
	Longitude   float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

type NominatimClient struct {
	endpoint     string
	countryCodes string
	language     string
	limit        int
	client       *http.Client
}

type Option func(*NominatimClient)

// WithCountryCodes restricts results to a comma separated list of ISO 3166-1 alpha-2 codes.
func WithCountryCodes(codes string) Option {
	return func(n *NominatimClient) {
		n.countryCodes = codes
	}
}

func WithLanguage(lang string) Option {
	return func(n *NominatimClient) {
		n.language = lang
	}
}

func WithLimit(limit int) Option {
	return func(n *NominatimClient) {
		n.limit = limit
	}
}

func New(endpoint string, opts ...Option) *NominatimClient {
	n := &NominatimClient{
		endpoint: endpoint,
		limit:    1,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *NominatimClient) Query(ctx context.Context, query string) ([]QueryResult, error) {
	values := url.Values{
		"q":      []string{query},
		"format": []string{"json"},
		"limit":  []string{strconv.Itoa(n.limit)},
	}
	if n.countryCodes != "" {
		values.Set("countrycodes", n.countryCodes)
	}
	if n.language != "" {
		values.Set("accept-language", n.language)
	}

	q := url.URL{
		Path:     "search",
		RawQuery: values.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", n.endpoint, q.String())
	log.WithField("prefix", "nominatim").WithField("req", reqString).Debug("request from nominatim")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqString, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "nominatim").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "nominatim").WithField("resp", string(dumpBytes)).Error("error response from nominatim")
		return nil, fmt.Errorf("fail to query address: status %d", resp.StatusCode)
	}

	var result []QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	log.WithField("prefix", "nominatim").WithField("results", len(result)).Debug("response from nominatim")

	return result, nil
}
