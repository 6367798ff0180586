package chadwick_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlb-statsapi-mcp/internal/adapter/outbound/chadwick"
)

func newTestClient(t *testing.T, handler http.Handler) *chadwick.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return chadwick.New(chadwick.Config{
		RegisterURL: server.URL + "/register/data/people.csv",
		HTTPClient:  server.Client(),
		Logger:      logger,
	})
}

func serveCSV(t *testing.T, body string) *chadwick.Client {
	return newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, body)
	}))
}

// registerFixture carries an extra trailing column so matching must go
// through the header index, not positions.
const registerFixture = `name_last,name_first,key_mlbam,key_retro,key_bbref,key_fangraphs,mlb_played_first,mlb_played_last,birth_year
ohtani,shohei,660271,ohtas001,ohtansh01,19755,2018,2024,1994
judge,aaron,592450,judga001,judgeaa01,15640,2016,2024,1992
trout,mike,545361,troum001,troutmi01,10155,2011,2024,1991
troupe,quincy,124574,troq101,troupqu01,1012464,1952,1952,1912
smith,will,669257,smitw004,smithwi05,19197,2019,2024,1995
smith,will,519293,smitw003,smithwi04,13593,2012,2024,1989
doe,jon,,,,,,,1900
`

func TestClient_LookupExact(t *testing.T) {
	ctx := context.Background()
	client := serveCSV(t, registerFixture)

	t.Run("matches both names case-insensitively", func(t *testing.T) {
		records, err := client.Lookup(ctx, "OHTANI", "Shohei", false)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 660271, records[0].KeyMLBAM)
		assert.Equal(t, "ohtas001", records[0].KeyRetro)
		assert.Equal(t, "ohtansh01", records[0].KeyBBRef)
		assert.Equal(t, 19755, records[0].KeyFanGraphs)
		assert.Equal(t, 2018, records[0].MLBPlayedFirst)
		assert.Equal(t, 2024, records[0].MLBPlayedLast)
	})

	t.Run("returns every register row sharing the name", func(t *testing.T) {
		records, err := client.Lookup(ctx, "smith", "will", false)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 669257, records[0].KeyMLBAM)
		assert.Equal(t, 519293, records[1].KeyMLBAM)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		records, err := client.Lookup(ctx, "mantle", "mickey", false)
		require.NoError(t, err)
		assert.Nil(t, records)
	})

	t.Run("missing identifiers come back as -1", func(t *testing.T) {
		records, err := client.Lookup(ctx, "doe", "jon", false)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, -1, records[0].KeyMLBAM)
		assert.Equal(t, -1, records[0].KeyFanGraphs)
		assert.Equal(t, -1, records[0].MLBPlayedFirst)
		assert.Equal(t, -1, records[0].MLBPlayedLast)
		assert.Empty(t, records[0].KeyRetro)
	})
}

func TestClient_LookupFuzzy(t *testing.T) {
	ctx := context.Background()
	client := serveCSV(t, registerFixture)

	t.Run("exact last-name hits win outright", func(t *testing.T) {
		records, err := client.Lookup(ctx, "trout", "", true)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "mike", records[0].NameFirst)
	})

	t.Run("near misses fall back to the closest names", func(t *testing.T) {
		records, err := client.Lookup(ctx, "truot", "", true)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "trout", records[0].NameLast)
	})

	t.Run("nothing close enough is nil", func(t *testing.T) {
		records, err := client.Lookup(ctx, "xyzzyx", "", true)
		require.NoError(t, err)
		assert.Nil(t, records)
	})
}

func TestClient_FuzzyRanking(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by similarity not register order", func(t *testing.T) {
		client := serveCSV(t, `name_last,name_first,key_mlbam,key_retro,key_bbref,key_fangraphs,mlb_played_first,mlb_played_last
carver,lane,1,a,a,1,2000,2001
carter,joe,2,b,b,2,1983,1998
`)
		records, err := client.Lookup(ctx, "carterr", "", true)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "carter", records[0].NameLast)
		assert.Equal(t, "carver", records[1].NameLast)
	})

	t.Run("caps near matches at five, ties in register order", func(t *testing.T) {
		client := serveCSV(t, `name_last,name_first,key_mlbam,key_retro,key_bbref,key_fangraphs,mlb_played_first,mlb_played_last
bee,a,1,a,a,1,2000,2000
cee,b,2,b,b,2,2000,2000
dee,c,3,c,c,3,2000,2000
fee,d,4,d,d,4,2000,2000
gee,e,5,e,e,5,2000,2000
hee,f,6,f,f,6,2000,2000
`)
		records, err := client.Lookup(ctx, "kee", "", true)
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, "bee", records[0].NameLast)
		assert.Equal(t, "gee", records[4].NameLast)
	})
}

func TestClient_DownloadsPerCall(t *testing.T) {
	ctx := context.Background()
	downloads := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		assert.Equal(t, "/register/data/people.csv", r.URL.Path)
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		fmt.Fprint(w, registerFixture)
	}))

	_, err := client.Lookup(ctx, "judge", "aaron", false)
	require.NoError(t, err)
	_, err = client.Lookup(ctx, "judge", "", true)
	require.NoError(t, err)
	assert.Equal(t, 2, downloads)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("non-2xx carries a body excerpt", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusServiceUnavailable)
		}))
		_, err := client.Lookup(ctx, "judge", "", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 503")
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("header missing a key column", func(t *testing.T) {
		client := serveCSV(t, "name_last,name_first\njudge,aaron\n")
		_, err := client.Lookup(ctx, "judge", "", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing column "key_mlbam"`)
	})
}
