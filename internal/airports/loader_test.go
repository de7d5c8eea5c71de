package airports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_AcceptedPayloadShapes(t *testing.T) {
	record := `{"iata":"JFK","name":"John F. Kennedy International"}`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[` + record + `]`, 1},
		{"airports key", `{"airports":[` + record + `]}`, 1},
		{"data key", `{"data":[` + record + `]}`, 1},
		{"unrecognized shape", `{"rows":[` + record + `]}`, 0},
		{"scalar", `42`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			ix, err := NewLoader(server.URL).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ix.Len())
		})
	}
}

func TestLoader_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewLoader(server.URL).Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := NewLoader(server.URL).Load(context.Background())
	assert.Error(t, err)
}

func TestDecodePayload_MalformedJSON(t *testing.T) {
	assert.Nil(t, DecodePayload([]byte(`{not json`)))
}
