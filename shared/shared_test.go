package shared_test

import (
	"context"
	"errors"
	"realty/shared"
	"realty/shared/cache/mocks"
	"realty/shared/constant"
	"realty/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))
	assert.True(t, *shared.ConvertStringToBool("true"))
	assert.False(t, *shared.ConvertStringToBool("0"))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 10, limit: 0, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 95, limit: 10, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status string `db:"status"`
		Notes  string `db:"notes"`
		Hidden string
	}

	fields := shared.TransformFields(update{Status: "cancelled", Hidden: "x"}, "ops")

	assert.Equal(t, "cancelled", fields["status"])
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "Hidden")
	assert.Equal(t, "ops", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "viewings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(viewings.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, constant.ContextGuest, shared.ActorFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "ops")
	assert.Equal(t, "ops", shared.ActorFromContext(ctx))
}

func TestBuildCacheKeyWithQuery_IsStable(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.And(
		dto.Filter{Field: "property_id", Operator: dto.FilterOperatorEq, Value: "42"},
		dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "scheduled"},
	)

	first := shared.BuildCacheKeyWithQuery("viewing:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("viewing:gets", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "property_id=42")
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("viewing:gets", dto.QueryParams{Page: 2, Limit: 10}, filter))
	assert.Equal(t, "viewing:get:abc", shared.BuildCacheKey("viewing:get", "abc"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "viewing:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "viewing:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "viewing:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "viewing:count")
}
