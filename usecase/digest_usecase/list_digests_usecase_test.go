package digest_usecase

import (
	"context"
	"errors"
	"testing"

	"allaboutxrp/domain"
	"allaboutxrp/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListDigestsUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockDigestIndexPort(ctrl)

	index.EXPECT().FetchDigestIndex(gomock.Any()).Return([]domain.DigestSummary{summary("old", 1), summary("new", 4)}, nil)

	got, err := NewListDigestsUsecase(index, 0).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Slug)
}

func TestListDigestsUsecase_Execute_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockDigestIndexPort(ctrl)
	index.EXPECT().FetchDigestIndex(gomock.Any()).Return([]domain.DigestSummary{
		summary("w1", 1), summary("w3", 3), summary("w2", 2),
	}, nil)

	got, err := NewListDigestsUsecase(index, 2).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w3", got[0].Slug)
	assert.Equal(t, "w2", got[1].Slug)
}

func TestListDigestsUsecase_Execute_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockDigestIndexPort(ctrl)
	index.EXPECT().FetchDigestIndex(gomock.Any()).Return(nil, errors.New("down"))

	_, err := NewListDigestsUsecase(index, 0).Execute(context.Background())
	assert.Error(t, err)
}

func TestListDigestsUsecase_Execute_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := mocks.NewMockDigestIndexPort(ctrl)
	index.EXPECT().FetchDigestIndex(gomock.Any()).Return(nil, nil)

	got, err := NewListDigestsUsecase(index, 0).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}
