package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/agentui/pkg/demo"
	"github.com/umputun/agentui/pkg/settings"
	"github.com/umputun/agentui/server/mocks"
)

func mockedServer(store SettingsStore) *Server {
	return New(testConfig(":8080"), store, testCluster(), testContent(), "1.2.3", false)
}

func TestServer_statusHandler(t *testing.T) {
	srv := mockedServer(&mocks.SettingsStoreMock{})

	req := httptest.NewRequest("GET", "/api/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_getAgentGatewayHandler(t *testing.T) {
	rec := settings.Default()
	rec.PublicURL = "https://gw.example.com"
	store := &mocks.SettingsStoreMock{GetFunc: func() settings.Record { return rec }}
	srv := mockedServer(store)

	req := httptest.NewRequest("GET", "/api/admin/agentgateway", http.NoBody)
	w := httptest.NewRecorder()
	srv.getAgentGatewayHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got settings.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, rec, got)
	assert.Len(t, store.GetCalls(), 1)
}

func TestServer_updateAgentGatewayHandler(t *testing.T) {
	t.Run("passes parsed patch to store", func(t *testing.T) {
		store := &mocks.SettingsStoreMock{
			UpdateFunc: func(ctx context.Context, p settings.Patch) settings.Record {
				return settings.Default().Merge(p)
			},
		}
		srv := mockedServer(store)

		req := httptest.NewRequest("PUT", "/api/admin/agentgateway", strings.NewReader(`{"enabled":"yes","title":5,"themeColor":"#fff"}`))
		w := httptest.NewRecorder()
		srv.updateAgentGatewayHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.UpdateCalls(), 1)
		assert.Equal(t, "yes", store.UpdateCalls()[0].P["enabled"])

		var got settings.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Enabled)
		assert.Equal(t, "Agent Gateway", got.Title)
		assert.Equal(t, "#fff", got.ThemeColor)
	})

	t.Run("rejects malformed payloads without touching the store", func(t *testing.T) {
		store := &mocks.SettingsStoreMock{}
		srv := mockedServer(store)

		for _, body := range []string{"", "{", "not json", "null", `{"a":1}{"b":2}`, `{"enabled":true}}`, `{"authMode":"oauth"}]]]`} {
			req := httptest.NewRequest("PUT", "/api/admin/agentgateway", strings.NewReader(body))
			w := httptest.NewRecorder()
			srv.updateAgentGatewayHandler(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"message":"Invalid request"}`, w.Body.String(), body)
		}
		assert.Empty(t, store.UpdateCalls())
	})

	t.Run("non-object json is an empty patch", func(t *testing.T) {
		store := &mocks.SettingsStoreMock{
			UpdateFunc: func(ctx context.Context, p settings.Patch) settings.Record {
				assert.Empty(t, p)
				return settings.Default().Merge(p)
			},
		}
		srv := mockedServer(store)

		req := httptest.NewRequest("PUT", "/api/admin/agentgateway", strings.NewReader(`[1,2]`))
		w := httptest.NewRecorder()
		srv.updateAgentGatewayHandler(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, store.UpdateCalls(), 1)
	})
}

func TestServer_updateAgentGatewayIdempotent(t *testing.T) {
	store := settings.NewStore(settings.Default(), nil)
	srv := mockedServer(store)

	body := `{"enabled":true,"authMode":"none","publicUrl":"https://gw","title":["x"]}`
	var results []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("PUT", "/api/admin/agentgateway", strings.NewReader(body))
		w := httptest.NewRecorder()
		srv.updateAgentGatewayHandler(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		results = append(results, w.Body.String())
	}
	assert.Equal(t, results[0], results[1])
}

func TestServer_updateAgentGatewayConcurrent(t *testing.T) {
	store := settings.NewStore(settings.Default(), nil)
	srv := mockedServer(store)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := settings.AuthModes()[i%3]
			req := httptest.NewRequest("PUT", "/api/admin/agentgateway", strings.NewReader(`{"enabled":true,"authMode":"`+string(mode)+`"}`))
			w := httptest.NewRecorder()
			srv.updateAgentGatewayHandler(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}(i)
	}
	wg.Wait()

	rec := store.Get()
	assert.True(t, rec.Enabled)
	assert.True(t, rec.AuthMode.IsValid())
}

func TestServer_agentGatewayHistoryHandler(t *testing.T) {
	revs := []settings.Revision{
		{Revision: 2, Record: settings.Default(), UpdatedAt: testNow},
		{Revision: 1, Record: settings.Default(), UpdatedAt: testNow.Add(-time.Minute)},
	}

	tests := []struct {
		name      string
		query     string
		code      int
		wantLimit int
		histErr   error
	}{
		{name: "default limit", query: "", code: http.StatusOK, wantLimit: defaultHistoryLimit},
		{name: "explicit limit", query: "?limit=5", code: http.StatusOK, wantLimit: 5},
		{name: "limit capped", query: "?limit=1000", code: http.StatusOK, wantLimit: maxHistoryLimit},
		{name: "invalid limit", query: "?limit=abc", code: http.StatusBadRequest},
		{name: "zero limit", query: "?limit=0", code: http.StatusBadRequest},
		{name: "store error", query: "", code: http.StatusInternalServerError, histErr: errors.New("db gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.SettingsStoreMock{
				HistoryFunc: func(ctx context.Context, limit int) ([]settings.Revision, error) {
					if tt.histErr != nil {
						return nil, tt.histErr
					}
					return revs, nil
				},
			}
			srv := mockedServer(store)

			req := httptest.NewRequest("GET", "/api/admin/agentgateway/history"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			srv.agentGatewayHistoryHandler(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code != http.StatusOK {
				return
			}
			require.Len(t, store.HistoryCalls(), 1)
			assert.Equal(t, tt.wantLimit, store.HistoryCalls()[0].Limit)

			var got []settings.Revision
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, int64(2), got[0].Revision)
		})
	}
}

func TestServer_clusterHandler(t *testing.T) {
	srv := mockedServer(&mocks.SettingsStoreMock{})

	req := httptest.NewRequest("GET", "/api/admin/cluster", http.NoBody)
	w := httptest.NewRecorder()
	srv.clusterHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"cluster", "cpu", "mem", "requests"} {
		assert.Contains(t, raw, key)
	}

	var snap demo.ClusterSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.CPU, 24)
	assert.Len(t, snap.Memory, 24)
	assert.Len(t, snap.Requests, 24)
	assert.Equal(t, testNow, snap.CPU[23].Timestamp)
}

func TestServer_organizationsHandler(t *testing.T) {
	srv := mockedServer(&mocks.SettingsStoreMock{})

	req := httptest.NewRequest("GET", "/api/user/organizations", http.NoBody)
	w := httptest.NewRecorder()
	srv.organizationsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got demo.OrganizationList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, demo.Organizations(), got)
}

func TestServer_listAgentsHandler(t *testing.T) {
	srv := mockedServer(&mocks.SettingsStoreMock{})

	req := httptest.NewRequest("GET", "/api/agents", http.NoBody)
	w := httptest.NewRecorder()
	srv.listAgentsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []demo.Agent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, demo.Agents(), got)
}
