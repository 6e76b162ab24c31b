package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellermate/negotiator/internal/api/handlers"
	"github.com/sellermate/negotiator/internal/api/handlers/mocks"
	"github.com/sellermate/negotiator/internal/engine"
	domain "github.com/sellermate/negotiator/pkg/types"
)

func newRulesAPI(t *testing.T, m *mocks.MockNegotiator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterRuleRoutes(api, handlers.NewRulesHandler(m))
	return api
}

func TestRulesHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for a fresh user", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			ListRules(mock.Anything, "user-1").
			Return(domain.DefaultRules(), nil).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Get("/api/v1/rules", "X-User-ID: user-1")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"total":4`)
		assert.Contains(t, resp.Body.String(), "default-accept-high")
	})

	t.Run("missing user header returns 422", func(t *testing.T) {
		t.Parallel()

		api := newRulesAPI(t, mocks.NewMockNegotiator(t))

		resp := api.Get("/api/v1/rules")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("engine failure returns 500", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			ListRules(mock.Anything, "user-1").
			Return(nil, assert.AnError).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Get("/api/v1/rules", "X-User-ID: user-1")
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestRulesHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a counter rule", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			CreateRule(mock.Anything, mock.MatchedBy(func(r *domain.NegotiationRule) bool {
				return r.UserID == "user-1" &&
					r.Name == "counter band" &&
					r.Action == domain.ActionCounter &&
					r.CounterPercentage != nil && *r.CounterPercentage == 85.0 &&
					r.Enabled
			})).
			Return(nil).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Post("/api/v1/rules", "X-User-ID: user-1", map[string]any{
			"name":               "counter band",
			"condition":          "percentage_above",
			"threshold":          70,
			"action":             "counter",
			"counter_percentage": 85,
			"priority":           5,
		})
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"name":"counter band"`)
	})

	t.Run("unknown condition rejected by schema", func(t *testing.T) {
		t.Parallel()

		api := newRulesAPI(t, mocks.NewMockNegotiator(t))

		resp := api.Post("/api/v1/rules", "X-User-ID: user-1", map[string]any{
			"name":      "bad",
			"condition": "moon_phase",
			"threshold": 1,
			"action":    "accept",
			"priority":  1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("engine validation error returns 422", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			CreateRule(mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: counter rules require counter_percentage", engine.ErrValidation)).
			Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Post("/api/v1/rules", "X-User-ID: user-1", map[string]any{
			"name":      "broken counter",
			"condition": "percentage_above",
			"threshold": 70,
			"action":    "counter",
			"priority":  5,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "counter_percentage")
	})

	t.Run("explicit enabled false is honored", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			CreateRule(mock.Anything, mock.MatchedBy(func(r *domain.NegotiationRule) bool {
				return !r.Enabled
			})).
			Return(nil).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Post("/api/v1/rules", "X-User-ID: user-1", map[string]any{
			"name":      "draft rule",
			"condition": "item_age",
			"threshold": 30,
			"action":    "accept",
			"priority":  2,
			"enabled":   false,
		})
		assert.Equal(t, http.StatusCreated, resp.Code)
	})
}

func TestRulesHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("partial update returns the updated rule", func(t *testing.T) {
		t.Parallel()

		updated := domain.NewRule("accept strong", domain.CondPercentageAbove, 92, domain.ActionAccept, 10)
		updated.ID = "rule-1"
		updated.UserID = "user-1"

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			UpdateRule(mock.Anything, "rule-1", "user-1", map[string]any{"threshold": 92.0}).
			Return(&updated, nil).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Patch("/api/v1/rules/rule-1", "X-User-ID: user-1",
			map[string]any{"threshold": 92.0})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"threshold":92`)
	})

	t.Run("missing rule returns 404", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			UpdateRule(mock.Anything, "rule-gone", "user-1", mock.Anything).
			Return(nil, fmt.Errorf("%w: rule", engine.ErrNotFound)).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Patch("/api/v1/rules/rule-gone", "X-User-ID: user-1",
			map[string]any{"enabled": false})
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("immutable field returns 422", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			UpdateRule(mock.Anything, "rule-1", "user-1", mock.Anything).
			Return(nil, fmt.Errorf("%w: field %q is not updatable", engine.ErrValidation, "action")).
			Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Patch("/api/v1/rules/rule-1", "X-User-ID: user-1",
			map[string]any{"action": "reject"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestRulesHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes the rule", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			DeleteRule(mock.Anything, "rule-1", "user-1").
			Return(nil).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Delete("/api/v1/rules/rule-1", "X-User-ID: user-1")
		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("missing rule returns 404", func(t *testing.T) {
		t.Parallel()

		mockEngine := mocks.NewMockNegotiator(t)
		mockEngine.EXPECT().
			DeleteRule(mock.Anything, "rule-gone", "user-1").
			Return(fmt.Errorf("%w: rule", engine.ErrNotFound)).Once()

		api := newRulesAPI(t, mockEngine)

		resp := api.Delete("/api/v1/rules/rule-gone", "X-User-ID: user-1")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
