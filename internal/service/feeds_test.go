package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cern1991/rugby-league-central/internal/cache"
	"github.com/cern1991/rugby-league-central/internal/feed"
)

func TestFeedService_NewsCached(t *testing.T) {
	ctx := context.Background()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<rss><channel><item><title>Hello</title><link>https://example.com/a</link><pubDate>Fri, 28 Aug 2026 09:30:00 GMT</pubDate><source>Src</source></item></channel></rss>`))
	}))
	defer srv.Close()

	svc := NewFeedService(feed.NewNewsClient(srv.URL), feed.NewSportsClient(srv.URL, "k"), cache.NewMemory())

	items, ok := svc.News(ctx, "nrl")
	require.True(t, ok)
	require.Len(t, items, 1)

	items, ok = svc.News(ctx, "nrl")
	require.True(t, ok)
	require.Len(t, items, 1)
	require.EqualValues(t, 1, hits.Load(), "second read served from cache")
}

func TestFeedService_UnknownLeague(t *testing.T) {
	ctx := context.Background()
	svc := NewFeedService(feed.NewNewsClient("http://127.0.0.1:1"), feed.NewSportsClient("http://127.0.0.1:1", "k"), cache.NewMemory())

	_, ok := svc.News(ctx, "afl")
	require.False(t, ok)
	_, ok = svc.Fixtures(ctx, "afl")
	require.False(t, ok)
	_, ok = svc.Results(ctx, "afl")
	require.False(t, ok)
	_, ok = svc.Standings(ctx, "afl", "2026")
	require.False(t, ok)
}

func TestFeedService_EmptyResultCached(t *testing.T) {
	ctx := context.Background()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewFeedService(feed.NewNewsClient(srv.URL), feed.NewSportsClient(srv.URL, "k"), cache.NewMemory())

	fixtures, ok := svc.Fixtures(ctx, "nrl")
	require.True(t, ok, "known league with a dead upstream still renders")
	require.NotNil(t, fixtures)
	require.Empty(t, fixtures)

	_, _ = svc.Fixtures(ctx, "nrl")
	require.EqualValues(t, 1, hits.Load(), "empty result is cached, upstream not hammered")
}

func TestFeedService_Leagues(t *testing.T) {
	svc := NewFeedService(nil, nil, cache.NewMemory())
	leagues := svc.Leagues()
	require.NotEmpty(t, leagues)
	require.Equal(t, "nrl", leagues[0].Slug)
}
