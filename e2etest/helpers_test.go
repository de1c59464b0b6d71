package e2etest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/dashboard"
)

type sessionBody struct {
	ID   string         `json:"id"`
	View dashboard.View `json:"view"`
}

// call sends a JSON request and returns the status and raw body
func call(t *testing.T, method, url string, payload interface{}) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func createSession(t *testing.T, env *TestEnv) sessionBody {
	t.Helper()
	status, data := call(t, http.MethodPost, env.ServerBaseURL+"/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, status, string(data))

	var created sessionBody
	require.NoError(t, json.Unmarshal(data, &created))
	require.NotEmpty(t, created.ID)
	return created
}

func sessionURL(env *TestEnv, id string) string {
	return env.ServerBaseURL + "/api/v1/sessions/" + id
}

// getView fetches the current view without failing the test on transport errors
func getView(env *TestEnv, id string) (dashboard.View, bool) {
	resp, err := http.Get(sessionURL(env, id))
	if err != nil {
		return dashboard.View{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return dashboard.View{}, false
	}

	var body sessionBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return dashboard.View{}, false
	}
	return body.View, true
}

// waitForView polls the session until cond holds
func waitForView(t *testing.T, env *TestEnv, id string, cond func(dashboard.View) bool) dashboard.View {
	t.Helper()
	var last dashboard.View
	require.Eventually(t, func() bool {
		view, ok := getView(env, id)
		if !ok {
			return false
		}
		last = view
		return cond(view)
	}, 10*time.Second, 50*time.Millisecond, "view never reached the expected state")
	return last
}

func detailReadyFor(coinID string, tf dashboard.TimeFrame) func(dashboard.View) bool {
	return func(v dashboard.View) bool {
		return v.Status == dashboard.StatusReady &&
			v.Detail.Status == dashboard.DetailReady &&
			v.Selection.CoinID == coinID &&
			v.Selection.TimeFrame == tf
	}
}
