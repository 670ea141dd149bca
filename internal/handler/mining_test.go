package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/handler"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/ore"
	"github.com/osse101/SkillForge_Go/mocks"
)

// newMiningRouter mounts the mining handler the way the server does
func newMiningRouter(svc *mocks.MockMiningService) http.Handler {
	h := handler.NewMiningHandler(svc)
	r := chi.NewRouter()
	r.Post("/break", h.HandleBreak)
	r.Get("/players/{playerID}", h.HandleGetPlayer)
	r.Post("/players/{playerID}/load", h.HandleLoadPlayer)
	r.Post("/players/{playerID}/unload", h.HandleUnloadPlayer)
	r.Delete("/players/{playerID}", h.HandleRemovePlayer)
	r.Get("/leaderboard", h.HandleLeaderboard)
	r.Get("/catalog", h.HandleCatalog)
	r.Get("/curve", h.HandleCurve)
	r.Get("/cache/stats", h.HandleCacheStats)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMiningHandler_Break(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockMiningService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Ore grants XP and a drop",
			body: handler.BlockBrokenRequest{PlayerID: "p1", BlockID: "Ore_Iron_2", Position: domain.Position{X: 4, Y: 60, Z: -2}},
			setupMock: func(m *mocks.MockMiningService) {
				m.On("HandleBlockBroken", mock.Anything, domain.BlockBrokenEvent{
					PlayerID: "p1", BlockID: "Ore_Iron_2", Position: domain.Position{X: 4, Y: 60, Z: -2},
				}).Return(&domain.BreakOutcome{
					PlayerID: "p1", Skill: domain.SkillMining, BlockID: "Ore_Iron_2", IsOre: true,
					XPGranted: 75, TotalXP: 1000, Level: 10,
					BonusDrop: &domain.BonusDrop{ItemID: domain.ItemCharcoal, Amount: 1, Position: domain.Position{X: 4, Y: 60, Z: -2}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bonus_drop":{"item_id":"Ingredient_Charcoal","amount":1`,
		},
		{
			name: "Non-ore block",
			body: handler.BlockBrokenRequest{PlayerID: "p1", BlockID: "Rock_Stone"},
			setupMock: func(m *mocks.MockMiningService) {
				m.On("HandleBlockBroken", mock.Anything, mock.Anything).
					Return(&domain.BreakOutcome{PlayerID: "p1", Skill: domain.SkillMining, BlockID: "Rock_Stone"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_ore":false`,
		},
		{
			name:           "Missing block id",
			body:           map[string]string{"player_id": "p1"},
			setupMock:      func(m *mocks.MockMiningService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"block_id":"This field is required"`,
		},
		{
			name:           "Player id with separator",
			body:           handler.BlockBrokenRequest{PlayerID: "p:1", BlockID: "Ore_Copper_1"},
			setupMock:      func(m *mocks.MockMiningService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"player_id":"Invalid player id"`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"player_id":`,
			setupMock:      func(m *mocks.MockMiningService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   handler.ErrMsgInvalidRequest,
		},
		{
			name: "Store down",
			body: handler.BlockBrokenRequest{PlayerID: "p1", BlockID: "Ore_Copper_1"},
			setupMock: func(m *mocks.MockMiningService) {
				m.On("HandleBlockBroken", mock.Anything, mock.Anything).Return(nil, domain.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   handler.ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockMiningService(t)
			tt.setupMock(svc)

			rec := doJSON(t, newMiningRouter(svc), http.MethodPost, "/break", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestMiningHandler_GetPlayer(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)
		svc.On("GetStatus", mock.Anything, "p1").Return(&domain.SkillStatus{
			PlayerID: "p1", Skill: domain.SkillMining, Level: 3, TotalXP: 400, XPIntoLevel: 17, XPForLevel: 520, XPToNextLevel: 503,
		}, nil)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/players/p1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var status domain.SkillStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 3, status.Level)
		assert.Equal(t, int64(503), status.XPToNextLevel)
	})

	t.Run("Unknown player", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)
		svc.On("GetStatus", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/players/ghost", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgPlayerNotFound)
	})

	t.Run("Invalid id", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/players/"+strings.Repeat("x", handler.MaxPlayerIDLength+1), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMiningHandler_Lifecycle(t *testing.T) {
	svc := mocks.NewMockMiningService(t)
	svc.On("LoadPlayer", mock.Anything, "p1").Return(&domain.SkillStatus{PlayerID: "p1", Level: 1}, nil)
	svc.On("UnloadPlayer", mock.Anything, "p1").Return(nil)
	svc.On("RemovePlayer", mock.Anything, "p1").Return(nil)
	router := newMiningRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/players/p1/load", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"level":1`)

	rec = doJSON(t, router, http.MethodPost, "/players/p1/unload", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), handler.MsgPlayerUnloaded)

	rec = doJSON(t, router, http.MethodDelete, "/players/p1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), handler.MsgPlayerRemoved)
}

func TestMiningHandler_Leaderboard(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)
		svc.On("Leaderboard", mock.Anything, mining.DefaultLeaderboardLimit).Return([]domain.LeaderboardEntry{
			{Rank: 1, PlayerID: "alice", Level: 4, XP: 903},
		}, nil)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/leaderboard", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"rank":1,"player_id":"alice","level":4,"xp":903}]`, rec.Body.String())
	})

	t.Run("Explicit limit", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)
		svc.On("Leaderboard", mock.Anything, 3).Return([]domain.LeaderboardEntry{}, nil)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/leaderboard?limit=3", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Non-numeric limit", func(t *testing.T) {
		svc := mocks.NewMockMiningService(t)

		rec := doJSON(t, newMiningRouter(svc), http.MethodGet, "/leaderboard?limit=ten", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid limit query parameter")
	})
}

func TestMiningHandler_ReferenceData(t *testing.T) {
	svc := mocks.NewMockMiningService(t)
	svc.On("Skill").Return(domain.SkillMining)
	svc.On("Catalog").Return([]ore.Entry{{Prefix: ore.PrefixCopper, XPReward: ore.XPCopper}})
	svc.On("Drops").Return(mining.DefaultDropConfig())
	svc.On("CurveTable", 3).Return([]domain.CurveRow{
		{Level: 1, XPForLevel: 0, TotalXP: 0},
		{Level: 2, XPForLevel: 100, TotalXP: 100},
		{Level: 3, XPForLevel: 283, TotalXP: 383},
	})
	svc.On("CacheStats").Return(mining.CacheStats{Hits: 4, Misses: 1, Size: 1})
	router := newMiningRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/catalog", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"prefix":"Ore_Copper_","xp":50}`)
	assert.Contains(t, rec.Body.String(), `"item_id":"Ingredient_Charcoal"`)

	rec = doJSON(t, router, http.MethodGet, "/curve?levels=3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"level":3,"xp_for_level":283,"total_xp":383}`)

	rec = doJSON(t, router, http.MethodGet, "/cache/stats", nil)
	assert.JSONEq(t, `{"hits":4,"misses":1,"size":1}`, rec.Body.String())
}
