package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"navportal/config"
)

// NotifyClient 群消息通知客户端
type NotifyClient struct {
	url     string
	groupID string
	Client  *http.Client
}

// NewNotifyClient 创建群消息通知客户端
func NewNotifyClient(cfg config.Notify) *NotifyClient {
	return &NotifyClient{
		url:     cfg.URL,
		groupID: cfg.GroupID,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// groupMessage 机器人API的请求体
type groupMessage struct {
	GroupID string `json:"group_id"`
	Message string `json:"message"`
}

// SendGroupMessage 向群发送一条消息
// 未配置机器人地址时跳过发送
func (nc *NotifyClient) SendGroupMessage(message string) error {
	if nc.url == "" {
		log.Println("未配置群机器人地址，跳过通知")
		return nil
	}

	body, err := json.Marshal(groupMessage{
		GroupID: nc.groupID,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, nc.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := nc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %v", err)
	}
	defer resp.Body.Close()

	// 检查响应状态
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification returned non-2xx status: %s", resp.Status)
	}

	return nil
}
