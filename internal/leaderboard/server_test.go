package leaderboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/games/snake"
	"github.com/nigelbigappetite/wing-shack-arcade-sub000/internal/storage"
)

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ts := httptest.NewServer(NewServer(store, apiKey, nil).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postScore(t *testing.T, ts *httptest.Server, sub Submission) *http.Response {
	t.Helper()
	body, err := json.Marshal(sub)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/leaderboard", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestSubmitAndTop(t *testing.T) {
	ts := newTestServer(t, "")

	resp := postScore(t, ts, Submission{
		SubmissionID: "sub-1",
		Game:         "snake",
		Name:         "Al Pine",
		Score:        42,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ack SubmitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Accepted)
	assert.Equal(t, 1, ack.Rank)

	top, err := http.Get(ts.URL + "/api/leaderboard?game=snake")
	require.NoError(t, err)
	defer top.Body.Close()
	require.Equal(t, http.StatusOK, top.StatusCode)

	var out TopResponse
	require.NoError(t, json.NewDecoder(top.Body).Decode(&out))
	assert.Equal(t, "snake", out.Game)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "Al Pine", out.Entries[0].Player)
	assert.Equal(t, 42, out.Entries[0].Score)
	assert.Equal(t, 1, out.Entries[0].Rank)
}

func TestTopLimitAndOrder(t *testing.T) {
	ts := newTestServer(t, "")

	for i := 0; i < 15; i++ {
		resp := postScore(t, ts, Submission{
			SubmissionID: "sub-" + string(rune('a'+i)),
			Game:         "snake",
			Name:         "Player X",
			Score:        i * 10,
		})
		resp.Body.Close()
	}

	top, err := http.Get(ts.URL + "/api/leaderboard?game=snake")
	require.NoError(t, err)
	defer top.Body.Close()

	var out TopResponse
	require.NoError(t, json.NewDecoder(top.Body).Decode(&out))
	require.Len(t, out.Entries, TopLimit)
	assert.Equal(t, 140, out.Entries[0].Score)
	for i := 1; i < len(out.Entries); i++ {
		assert.LessOrEqual(t, out.Entries[i].Score, out.Entries[i-1].Score)
		assert.Equal(t, i+1, out.Entries[i].Rank)
	}
}

func TestDuplicateSubmissionIsIdempotent(t *testing.T) {
	ts := newTestServer(t, "")

	sub := Submission{SubmissionID: "dupe-1", Game: "snake", Name: "Bea Sharp", Score: 9}

	first := postScore(t, ts, sub)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := postScore(t, ts, sub)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)

	top, err := http.Get(ts.URL + "/api/leaderboard?game=snake")
	require.NoError(t, err)
	defer top.Body.Close()

	var out TopResponse
	require.NoError(t, json.NewDecoder(top.Body).Decode(&out))
	assert.Len(t, out.Entries, 1, "replayed submission must not create a second row")
}

func TestRejectsBadSubmissions(t *testing.T) {
	ts := newTestServer(t, "")

	cases := []struct {
		name   string
		sub    Submission
		status int
		code   string
	}{
		{"missing id", Submission{Game: "snake", Name: "Al Pine", Score: 1}, http.StatusBadRequest, "missing_submission_id"},
		{"unknown game", Submission{SubmissionID: "x1", Game: "nope", Name: "Al Pine", Score: 1}, http.StatusNotFound, "unknown_game"},
		{"short name", Submission{SubmissionID: "x2", Game: "snake", Name: "A", Score: 1}, http.StatusUnprocessableEntity, "invalid_name"},
		{"long name", Submission{SubmissionID: "x3", Game: "snake", Name: "ABCDEFGHIJKLMNOPQ", Score: 1}, http.StatusUnprocessableEntity, "invalid_name"},
		{"bad chars", Submission{SubmissionID: "x4", Game: "snake", Name: "<script>", Score: 1}, http.StatusUnprocessableEntity, "invalid_name"},
		{"negative score", Submission{SubmissionID: "x5", Game: "snake", Name: "Al Pine", Score: -1}, http.StatusUnprocessableEntity, "invalid_score"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postScore(t, ts, tc.sub)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			var payload errorPayload
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, tc.code, payload.Error.Code)
			assert.NotEmpty(t, payload.Error.Message)
		})
	}
}

func TestTopRequiresKnownGame(t *testing.T) {
	ts := newTestServer(t, "")

	resp, err := http.Get(ts.URL + "/api/leaderboard?game=tetris")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2, err := http.Get(ts.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestAPIKeyAuth(t *testing.T) {
	ts := newTestServer(t, "secret")

	// No key
	resp, err := http.Get(ts.URL + "/api/leaderboard?game=snake")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Correct key
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/leaderboard?game=snake", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", "secret")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, "secret")

	// Health stays open even with auth enabled.
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
