package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
)

// Client drives a single game session through the REST API
type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*service.SessionInfo, error) {
	var reqBody []byte
	if configID != "" {
		var err error
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	var session service.SessionInfo
	if err := c.do(http.MethodPost, "/api/sessions", reqBody, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c.sessionID = session.ID
	return &session, nil
}

func (c *Client) GetSession() (*service.SessionInfo, error) {
	var session service.SessionInfo
	if err := c.do(http.MethodGet, "/api/sessions/"+c.sessionID, nil, &session); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

func (c *Client) Select(peg int) (*service.SelectResult, error) {
	body, err := json.Marshal(map[string]int{"peg": peg})
	if err != nil {
		return nil, fmt.Errorf("marshal select: %w", err)
	}

	var result service.SelectResult
	if err := c.do(http.MethodPost, "/api/sessions/"+c.sessionID+"/select", body, &result); err != nil {
		return nil, fmt.Errorf("select peg %d: %w", peg, err)
	}
	return &result, nil
}

func (c *Client) SetRings(count int) (*service.SelectResult, error) {
	body, err := json.Marshal(engine.RingChange{Kind: engine.RingSet, Value: strconv.Itoa(count)})
	if err != nil {
		return nil, fmt.Errorf("marshal rings: %w", err)
	}

	var result service.SelectResult
	if err := c.do(http.MethodPost, "/api/sessions/"+c.sessionID+"/rings", body, &result); err != nil {
		return nil, fmt.Errorf("set rings: %w", err)
	}
	return &result, nil
}

func (c *Client) Reset() (*service.SelectResult, error) {
	var result service.SelectResult
	if err := c.do(http.MethodPost, "/api/sessions/"+c.sessionID+"/reset", nil, &result); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return &result, nil
}

func (c *Client) do(method, path string, body []byte, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("%s", resp.Status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
