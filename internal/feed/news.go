package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cern1991/rugby-league-central/internal/domain"
	"github.com/cern1991/rugby-league-central/internal/metrics"
	"github.com/cern1991/rugby-league-central/internal/normalize"
	"github.com/cern1991/rugby-league-central/pkg/slogx"
)

// NewsClient fetches headlines from a Google-News-style RSS aggregator.
type NewsClient struct {
	baseURL string
	http    *http.Client
}

func NewNewsClient(baseURL string) *NewsClient {
	return &NewsClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: fetchTimeout},
	}
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string    `xml:"title"`
	Link    string    `xml:"link"`
	PubDate string    `xml:"pubDate"`
	Source  rssSource `xml:"source"`
}

type rssSource struct {
	Name string `xml:",chardata"`
}

// FetchNews returns normalized headlines for a league. Any upstream
// failure logs a warning and returns an empty slice; news is best-effort
// content and must never take a page down with it.
func (c *NewsClient) FetchNews(ctx context.Context, league League) []domain.NewsItem {
	log := slogx.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/rss/search?q=%s&hl=en-AU&gl=AU&ceid=AU:en",
		c.baseURL, url.QueryEscape(league.Name+" rugby league"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warn("news: build request", "league", league.Slug, "error", err)
		return []domain.NewsItem{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("news: fetch failed", "league", league.Slug, "error", err)
		metrics.UpstreamFailures.WithLabelValues("news").Inc()
		return []domain.NewsItem{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("news: unexpected status", "league", league.Slug, "status", resp.StatusCode)
		metrics.UpstreamFailures.WithLabelValues("news").Inc()
		return []domain.NewsItem{}
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		log.Warn("news: decode failed", "league", league.Slug, "error", err)
		metrics.UpstreamFailures.WithLabelValues("news").Inc()
		return []domain.NewsItem{}
	}

	items := make([]domain.NewsItem, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		items = append(items, domain.NewsItem{
			Title:       normalize.DecodeEntities(it.Title),
			Link:        normalize.DecodeAggregatorLink(it.Link),
			Source:      it.Source.Name,
			League:      league.Name,
			PublishedAt: parsePubDate(it.PubDate),
		})
	}
	return items
}

// parsePubDate handles the RFC 1123 variants seen in aggregator feeds.
// An unparsable date yields the zero time rather than dropping the item.
func parsePubDate(raw string) time.Time {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC822Z, time.RFC822} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
