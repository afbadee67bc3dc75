package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navportal/internal/model"
)

func TestAnnouncementCreateAndFindLatest(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))

	before := time.Now()
	require.NoError(t, repo.Create(&model.Announcement{
		Title:   "维护通知",
		Content: "今晚停机维护",
	}))

	latest, err := repo.FindLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "维护通知", latest.Title)
	assert.Equal(t, "今晚停机维护", latest.Content)
	assert.False(t, latest.CreatedAt.Before(before.Truncate(time.Second)))
}

func TestAnnouncementFindLatestPicksNewest(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))

	old := model.Announcement{
		Title:     "旧公告",
		Content:   "旧内容",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(&old))
	require.NoError(t, repo.Create(&model.Announcement{
		Title:   "新公告",
		Content: "新内容",
	}))

	latest, err := repo.FindLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "新公告", latest.Title)
}

func TestAnnouncementFindLatestEmpty(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))

	latest, err := repo.FindLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)
}
