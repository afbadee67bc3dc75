package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"navportal/config"
	"navportal/internal/model"
	"navportal/internal/service"
)

// newTestRouter 内存数据库加种子管理员 admin/secret123
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 内存库在多个连接之间不共享，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Setting{},
		&model.AdminUser{},
		&model.NavButton{},
		&model.Announcement{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.AdminUser{
		ID:       1,
		Username: "admin",
		Password: string(hash),
	}).Error)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	return SetupRouter(service.NewServices(db, cfg))
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/admin/login", "",
		`{"username":"admin","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "admin", resp.Username)
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/admin/login", "",
		`{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/admin/login", "",
		`{"username":"nobody","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/admin/login", "", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsUpdateFlow(t *testing.T) {
	router := newTestRouter(t)

	// 未带令牌的写操作被拒绝
	w := doRequest(router, http.MethodPost, "/api/settings/update", "",
		`{"settings":{"site_title":"My Portal"}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 伪造令牌被拒绝
	w = doRequest(router, http.MethodPost, "/api/settings/update", "bogus-token",
		`{"settings":{"site_title":"My Portal"}}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 带合法令牌的写操作成功
	token := loginToken(t, router)
	w = doRequest(router, http.MethodPost, "/api/settings/update", token,
		`{"settings":{"site_title":"My Portal"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "设置更新成功")

	// 公开读取能看到更新后的值
	w = doRequest(router, http.MethodGet, "/api/settings", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var settings map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "My Portal", settings["site_title"])
}

func TestNavButtonsFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router)

	w := doRequest(router, http.MethodPost, "/api/nav-buttons/update", "",
		`{"buttons":[]}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/nav-buttons/update", token,
		`{"buttons":[{"id":1,"number":1,"text":"首页","url":"https://example.com"},{"id":2,"number":2,"text":"博客","url":"https://blog.example.com"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/nav-buttons", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var buttons []model.NavButton
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buttons))
	require.Len(t, buttons, 2)
	assert.Equal(t, "首页", buttons[0].Text)
	assert.Equal(t, 0, buttons[0].Order)
	assert.Equal(t, "博客", buttons[1].Text)
	assert.Equal(t, 1, buttons[1].Order)

	// 整表替换为空列表
	w = doRequest(router, http.MethodPost, "/api/nav-buttons/update", token, `{"buttons":[]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/nav-buttons", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buttons))
	assert.Empty(t, buttons)

	// 缺少buttons字段是参数错误
	w = doRequest(router, http.MethodPost, "/api/nav-buttons/update", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementsFlow(t *testing.T) {
	router := newTestRouter(t)

	// 没有公告时返回null
	w := doRequest(router, http.MethodGet, "/api/announcements/latest", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))

	w = doRequest(router, http.MethodPost, "/api/announcements/publish", "",
		`{"title":"维护通知","content":"今晚停机维护"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginToken(t, router)
	w = doRequest(router, http.MethodPost, "/api/announcements/publish", token,
		`{"title":"维护通知","content":"今晚停机维护"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "公告发布成功")

	w = doRequest(router, http.MethodGet, "/api/announcements/latest", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var latest model.Announcement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, "维护通知", latest.Title)
	assert.Equal(t, "今晚停机维护", latest.Content)
	assert.False(t, latest.CreatedAt.IsZero())
}
