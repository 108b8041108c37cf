package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rubenjb24/Questi-App/internal/api"
	"github.com/Rubenjb24/Questi-App/internal/fixtures"
	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	store.Init()
	return api.SetupRouter()
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp utils.APIResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec, resp
}

func TestHealthCheck(t *testing.T) {
	router := setup(t)

	rec, resp := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestGetUser(t *testing.T) {
	router := setup(t)

	rec, resp := do(t, router, http.MethodGet, "/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Jij", data["name"])
	assert.EqualValues(t, 2450, data["points"])
	assert.EqualValues(t, 347, data["rank"])
}

func TestToggleQuestEndpoint(t *testing.T) {
	router := setup(t)

	rec, resp := do(t, router, http.MethodPost, "/quests/d1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["toggled"])
	assert.Equal(t, true, data["celebrating"])

	user := data["user"].(map[string]interface{})
	assert.EqualValues(t, 2500, user["points"])
	assert.EqualValues(t, 342, user["rank"])
}

func TestToggleQuestUnknownIDIsSilentNoOp(t *testing.T) {
	router := setup(t)

	rec, resp := do(t, router, http.MethodPost, "/quests/nope/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code, "un id inconnu n'est pas une erreur")

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["toggled"])
}

func TestHistoricalDayThroughAPI(t *testing.T) {
	router := setup(t)

	_, resp := do(t, router, http.MethodPut, "/day", map[string]int{"day": 13})
	data := resp.Data.(map[string]interface{})
	assert.EqualValues(t, 13, data["day"])
	assert.Len(t, data["active"], 3)

	// mutation bloquée sur un jour historique
	_, resp = do(t, router, http.MethodPost, "/quests/d1/toggle", nil)
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["toggled"])
}

func TestCreatePostFlow(t *testing.T) {
	router := setup(t)
	images := fixtures.PostImages()

	// refusé tant que la quête n'est pas complétée
	_, resp := do(t, router, http.MethodPost, "/feed", map[string]string{
		"questId": "d1", "imageUrl": images[0], "caption": "te vroeg",
	})
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["created"])

	do(t, router, http.MethodPost, "/quests/d1/toggle", nil)

	_, resp = do(t, router, http.MethodPost, "/feed", map[string]string{
		"questId": "d1", "imageUrl": images[0], "caption": "Gelukt!",
	})
	data = resp.Data.(map[string]interface{})
	require.Equal(t, true, data["created"])

	feed := data["feed"].([]interface{})
	require.Len(t, feed, 6)
	newest := feed[0].(map[string]interface{})
	assert.Equal(t, "me", newest["userId"])
	assert.Equal(t, "Zojuist", newest["timestamp"])
}

func TestLikeAndCommentEndpoints(t *testing.T) {
	router := setup(t)

	_, resp := do(t, router, http.MethodPost, "/feed/p1/like", nil)
	feed := resp.Data.([]interface{})
	first := feed[0].(map[string]interface{})
	assert.EqualValues(t, 25, first["likes"])
	assert.Equal(t, true, first["likedByMe"])

	_, resp = do(t, router, http.MethodPost, "/feed/p1/comments", map[string]string{"text": "Goed gedaan!"})
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["added"])

	_, resp = do(t, router, http.MethodPost, "/feed/p1/comments", map[string]string{"text": "   "})
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["added"])
}

func TestDeleteForeignPostIsSilentNoOp(t *testing.T) {
	router := setup(t)

	rec, resp := do(t, router, http.MethodDelete, "/feed/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["deleted"])
	assert.Len(t, data["feed"], 5)
}

func TestLeaderboardEndpoints(t *testing.T) {
	router := setup(t)

	_, resp := do(t, router, http.MethodGet, "/leaderboard/global", nil)
	entries := resp.Data.([]interface{})
	require.Len(t, entries, 6)

	_, resp = do(t, router, http.MethodGet, "/leaderboard/friends", nil)
	entries = resp.Data.([]interface{})
	require.Len(t, entries, 6)
	third := entries[2].(map[string]interface{})
	assert.Equal(t, "f_me", third["id"])
	assert.EqualValues(t, 3, third["rank"])
}

func TestBadgesEndpoint(t *testing.T) {
	router := setup(t)

	_, resp := do(t, router, http.MethodGet, "/badges", nil)
	badges := resp.Data.([]interface{})
	require.Len(t, badges, 4)
	first := badges[0].(map[string]interface{})
	assert.Equal(t, "Vroege Vogel", first["name"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := setup(t)

	rec, _ := do(t, router, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
