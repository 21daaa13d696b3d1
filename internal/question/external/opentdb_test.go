package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTDBClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("amount"))
		assert.Equal(t, "easy", r.URL.Query().Get("difficulty"))
		assert.Empty(t, r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response_code":0,"results":[
			{"category":"Science: Computers","type":"multiple","difficulty":"easy","question":"What does CPU stand for?","correct_answer":"Central Processing Unit","incorrect_answers":["a","b","c"]},
			{"category":"Sports","type":"boolean","difficulty":"easy","question":"Q2","correct_answer":"True","incorrect_answers":["False"]}
		]}`))
	}))
	defer srv.Close()

	client := NewOpenTDBClient(srv.URL, srv.Client())
	got, err := client.Fetch(context.Background(), 2, "easy", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Science: Computers", got[0].Category)
	assert.Equal(t, "Central Processing Unit", got[0].CorrectAnswer)
	assert.Equal(t, []string{"False"}, got[1].IncorrectAnswer)
}

func TestOpenTDBClientResponseCodes(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{name: "no results", body: `{"response_code":1,"results":[]}`, code: http.StatusOK},
		{name: "rate limited", body: `{"response_code":5,"results":[]}`, code: http.StatusOK},
		{name: "server error", body: `oops`, code: http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewOpenTDBClient(srv.URL, srv.Client())
			got, err := client.Fetch(context.Background(), 10, "", "")
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}
