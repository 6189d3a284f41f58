// internal/airtable/client.go
// 에어테이블 REST API 래퍼. 테이블 단위 조회/생성/수정/삭제만 제공한다.
// 재시도, 백오프 없음. 비정상 응답은 원격 메시지를 담은 *APIError로 돌려주고
// 각 핸들러가 500으로 변환한다.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Record - 에어테이블 레코드 한 건.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime,omitempty"`
}

// RecordUpdate - 일괄 수정 입력.
type RecordUpdate struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Sort - 정렬 조건. sort[i][field] / sort[i][direction] 쿼리로 인코딩된다.
type Sort struct {
	Field     string
	Direction string // "asc" | "desc"
}

// ListOptions - 목록 조회 옵션.
type ListOptions struct {
	FilterByFormula string
	MaxRecords      int
	View            string
	Sort            []Sort
}

// APIError - 에어테이블이 돌려준 비정상 응답.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable: %d %s", e.StatusCode, e.Message)
}

// Client - 단일 베이스에 대한 에어테이블 클라이언트.
type Client struct {
	// BaseURL은 테스트에서 교체할 수 있다.
	BaseURL    string
	apiKey     string
	baseID     string
	httpClient *http.Client
}

// NewClient는 지정한 베이스의 클라이언트를 만든다.
func NewClient(apiKey, baseID string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		apiKey:     apiKey,
		baseID:     baseID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, c.baseID, url.PathEscape(table))
}

func (c *Client) recordURL(table, id string) string {
	return c.tableURL(table) + "/" + url.PathEscape(id)
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// ListRecords는 테이블의 레코드를 조회한다. opts는 nil일 수 있다.
func (c *Client) ListRecords(ctx context.Context, table string, opts *ListOptions) ([]Record, error) {
	params := url.Values{}
	if opts != nil {
		if opts.FilterByFormula != "" {
			params.Set("filterByFormula", opts.FilterByFormula)
		}
		if opts.MaxRecords > 0 {
			params.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
		}
		if opts.View != "" {
			params.Set("view", opts.View)
		}
		for i, s := range opts.Sort {
			params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
			params.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
		}
	}

	reqURL := c.tableURL(table)
	if enc := params.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	var out listResponse
	if err := c.do(ctx, http.MethodGet, reqURL, nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// GetRecord는 레코드 한 건을 조회한다.
func (c *Client) GetRecord(ctx context.Context, table, id string) (*Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodGet, c.recordURL(table, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecord는 레코드를 생성한다.
func (c *Client) CreateRecord(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	body := map[string]any{"fields": fields}
	var out Record
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecord는 레코드를 부분 수정한다. 전달한 필드만 병합된다.
func (c *Client) UpdateRecord(ctx context.Context, table, id string, fields map[string]any) (*Record, error) {
	body := map[string]any{"fields": fields}
	var out Record
	if err := c.do(ctx, http.MethodPatch, c.recordURL(table, id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecords는 여러 레코드를 일괄 수정한다.
func (c *Client) UpdateRecords(ctx context.Context, table string, updates []RecordUpdate) ([]Record, error) {
	body := map[string]any{"records": updates}
	var out listResponse
	if err := c.do(ctx, http.MethodPatch, c.tableURL(table), body, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// DeleteRecord는 레코드를 삭제한다.
func (c *Client) DeleteRecord(ctx context.Context, table, id string) error {
	return c.do(ctx, http.MethodDelete, c.recordURL(table, id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, reqURL string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func newAPIError(resp *http.Response) *APIError {
	// 에어테이블 오류 본문: {"error": {"type": ..., "message": ...}}
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := "Airtable API 오류"
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error.Message != "" {
		msg = payload.Error.Message
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
