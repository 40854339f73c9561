package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const newsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>rugby league - Google News</title>
    <item>
      <title>Broncos down Storm &amp; stay top &#8211; report</title>
      <link>https://example.com/broncos-storm-report</link>
      <pubDate>Fri, 28 Aug 2026 09:30:00 GMT</pubDate>
      <source url="https://example.com">Example Sport</source>
    </item>
    <item>
      <title>Eels name squad</title>
      <link>https://example.com/eels-squad</link>
      <pubDate>not a date</pubDate>
      <source url="https://example.com">Example Sport</source>
    </item>
  </channel>
</rss>`

func TestNewsClient_FetchNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rss/search", r.URL.Path)
		require.Contains(t, r.URL.Query().Get("q"), "rugby league")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(newsRSS))
	}))
	defer srv.Close()

	c := NewNewsClient(srv.URL)
	items := c.FetchNews(context.Background(), League{Slug: "nrl", Name: "NRL"})

	require.Len(t, items, 2)
	require.Equal(t, "Broncos down Storm & stay top – report", items[0].Title)
	require.Equal(t, "https://example.com/broncos-storm-report", items[0].Link)
	require.Equal(t, "Example Sport", items[0].Source)
	require.Equal(t, "NRL", items[0].League)
	require.False(t, items[0].PublishedAt.IsZero())
	require.True(t, items[1].PublishedAt.IsZero(), "bad pubDate keeps the item with zero time")
}

func TestNewsClient_UpstreamErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewNewsClient(srv.URL)
	items := c.FetchNews(context.Background(), League{Slug: "nrl", Name: "NRL"})
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestNewsClient_UnreachableDegradesToEmpty(t *testing.T) {
	c := NewNewsClient("http://127.0.0.1:1")
	items := c.FetchNews(context.Background(), League{Slug: "nrl", Name: "NRL"})
	require.NotNil(t, items)
	require.Empty(t, items)
}

const resultsJSON = `{
  "events": [
    {
      "dateEvent": "2026-08-22",
      "strTime": "09:50:00",
      "strTimestamp": "2026-08-22 09:50:00",
      "strLeague": "NRL",
      "strHomeTeam": "Brisbane Broncos",
      "strAwayTeam": "Melbourne Storm",
      "strHomeTeamBadge": "https://cdn.example.com/broncos.png",
      "strAwayTeamBadge": "https://cdn.example.com/storm.png",
      "intHomeScore": "24",
      "intAwayScore": "18",
      "strStatus": "Match Finished"
    },
    {
      "dateEvent": "2026-08-22",
      "strTime": "09:50:00",
      "strTimestamp": "2026-08-22 09:50:00",
      "strLeague": "NRL",
      "strHomeTeam": "Broncos",
      "strAwayTeam": "Storm",
      "strHomeTeamBadge": "",
      "strAwayTeamBadge": "",
      "intHomeScore": "24",
      "intAwayScore": "18",
      "strStatus": "Match Finished"
    }
  ]
}`

func TestSportsClient_FetchResultsDedupes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/json/testkey/eventspastleague.php", r.URL.Path)
		require.Equal(t, "4416", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resultsJSON))
	}))
	defer srv.Close()

	c := NewSportsClient(srv.URL, "testkey")
	league, ok := LeagueBySlug("nrl")
	require.True(t, ok)

	results := c.FetchResults(context.Background(), league)
	require.Len(t, results, 1, "alias rows collapse to one fixture")
	require.Equal(t, "Brisbane Broncos", results[0].HomeTeam, "row with both logos wins")
	require.Equal(t, "24", results[0].HomeScore)
	require.NotZero(t, results[0].Timestamp)
}

func TestSportsClient_FetchStandings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/json/testkey/lookuptable.php", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"table":[
			{"intRank":"1","strTeam":"Melbourne Storm","intPlayed":"24","intWin":"19","intDraw":"0","intLoss":"5","intGoalsFor":"620","intGoalsAgainst":"380","intPoints":"44"}
		]}`))
	}))
	defer srv.Close()

	c := NewSportsClient(srv.URL, "testkey")
	league, _ := LeagueBySlug("nrl")

	standings := c.FetchStandings(context.Background(), league, "2026")
	require.Len(t, standings, 1)
	require.Equal(t, 1, standings[0].Rank)
	require.Equal(t, "Melbourne Storm", standings[0].Team)
	require.Equal(t, 44, standings[0].Points)
	require.Equal(t, 620, standings[0].PointsFor)
}

func TestSportsClient_FetchRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/json/testkey/searchplayers.php", r.URL.Path)
		require.Equal(t, "Brisbane Broncos", r.URL.Query().Get("t"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"player":[
			{"strPlayer":"Test Fullback","strTeam":"Brisbane Broncos","strPosition":"Fullback","strCutout":"https://cdn.example.com/p1.png"}
		]}`))
	}))
	defer srv.Close()

	c := NewSportsClient(srv.URL, "testkey")
	players := c.FetchRoster(context.Background(), "Brisbane Broncos")
	require.Len(t, players, 1)
	require.Equal(t, "Test Fullback", players[0].Name)
	require.Equal(t, "Fullback", players[0].Position)
}

func TestSportsClient_MalformedBodyDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewSportsClient(srv.URL, "testkey")
	league, _ := LeagueBySlug("nrl")

	require.Empty(t, c.FetchFixtures(context.Background(), league))
	require.Empty(t, c.FetchResults(context.Background(), league))
	require.Empty(t, c.FetchStandings(context.Background(), league, "2026"))
	require.Empty(t, c.FetchRoster(context.Background(), "Broncos"))
}

func TestLeagueBySlug(t *testing.T) {
	l, ok := LeagueBySlug("super-league")
	require.True(t, ok)
	require.Equal(t, "Super League", l.Name)

	_, ok = LeagueBySlug("afl")
	require.False(t, ok)
}
