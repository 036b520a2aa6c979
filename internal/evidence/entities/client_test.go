package entities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broker/internal/evidence/upstream"
	"broker/pkg/domain"
)

const equinorPayload = `{
	"_embedded": {
		"enheter": [
			{
				"organisasjonsnummer": "923609016",
				"navn": "EQUINOR ASA",
				"organisasjonsform": {"kode": "ASA", "beskrivelse": "Allmennaksjeselskap"},
				"forretningsadresse": {"kommune": "STAVANGER", "postnummer": "4035", "land": "Norge"},
				"naeringskode1": {"kode": "06.100", "beskrivelse": "Utvinning av råolje"}
			},
			{
				"organisasjonsnummer": "990888213",
				"navn": "EQUINOR ENERGY AS"
			}
		]
	}
}`

func newRegistry(t *testing.T, status int, body string, seen *url.Values) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(upstream.New("entity_registry", srv.URL))
}

func TestSearch(t *testing.T) {
	t.Run("normalizes entities in upstream order", func(t *testing.T) {
		var query url.Values
		client := newRegistry(t, http.StatusOK, equinorPayload, &query)

		results, err := client.Search(context.Background(), SearchQuery{Name: "equinor", MunicipalityCode: "1103", Size: 5})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, EntitySummary{
			OrgNumber:           "923609016",
			Name:                "EQUINOR ASA",
			LegalForm:           "Allmennaksjeselskap",
			LegalFormCode:       "ASA",
			Municipality:        "STAVANGER",
			PostalCode:          "4035",
			Country:             "Norge",
			IndustryCode:        "06.100",
			IndustryDescription: "Utvinning av råolje",
		}, results[0])
		assert.Equal(t, "990888213", results[1].OrgNumber)
		assert.Empty(t, results[1].LegalFormCode, "missing nested groups default to empty")

		assert.Equal(t, "equinor", query.Get("navn"))
		assert.Equal(t, "1103", query.Get("kommunenummer"))
		assert.Equal(t, "5", query.Get("size"))
	})

	t.Run("omits municipality and clamps size", func(t *testing.T) {
		var query url.Values
		client := newRegistry(t, http.StatusOK, `{}`, &query)

		results, err := client.Search(context.Background(), SearchQuery{Name: "dnb", Size: 500})
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.False(t, query.Has("kommunenummer"))
		assert.Equal(t, "100", query.Get("size"))
	})

	t.Run("accepts entities key", func(t *testing.T) {
		client := newRegistry(t, http.StatusOK, `{"_embedded":{"entities":[{"organisasjonsnummer":"984851006","navn":"DNB BANK ASA"}]}}`, nil)

		results, err := client.Search(context.Background(), SearchQuery{Name: "dnb"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "DNB BANK ASA", results[0].Name)
	})

	t.Run("404 is an empty result", func(t *testing.T) {
		client := newRegistry(t, http.StatusNotFound, ``, nil)

		results, err := client.Search(context.Background(), SearchQuery{Name: "nobody"})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("server error is an upstream error", func(t *testing.T) {
		client := newRegistry(t, http.StatusInternalServerError, ``, nil)

		_, err := client.Search(context.Background(), SearchQuery{Name: "equinor"})
		require.Error(t, err)
		assert.True(t, upstream.IsUpstream(err))
	})
}

func TestGet(t *testing.T) {
	t.Run("uses first match", func(t *testing.T) {
		var query url.Values
		client := newRegistry(t, http.StatusOK, equinorPayload, &query)

		entity, err := client.Get(context.Background(), domain.OrgNumber("923609016"))
		require.NoError(t, err)
		require.NotNil(t, entity)
		assert.Equal(t, "EQUINOR ASA", entity.Name)
		assert.Equal(t, "923609016", query.Get("organisasjonsnummer"))
	})

	t.Run("empty result set is absent", func(t *testing.T) {
		client := newRegistry(t, http.StatusOK, `{"_embedded":{"enheter":[]}}`, nil)

		entity, err := client.Get(context.Background(), domain.OrgNumber("000000000"))
		require.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("404 is absent", func(t *testing.T) {
		client := newRegistry(t, http.StatusNotFound, ``, nil)

		entity, err := client.Get(context.Background(), domain.OrgNumber("000000000"))
		require.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		client := newRegistry(t, http.StatusBadGateway, ``, nil)

		entity, err := client.Get(context.Background(), domain.OrgNumber("923609016"))
		require.Error(t, err)
		assert.Nil(t, entity)
		assert.Equal(t, upstream.ErrorProviderOutage, upstream.GetCategory(err))
	})
}
