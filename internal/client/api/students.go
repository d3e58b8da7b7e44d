package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/studentdesk/internal/models"
	"github.com/iudanet/studentdesk/pkg/api"
)

// ListOptions query параметры для GET /students
type ListOptions struct {
	Extra url.Values // дополнительные параметры, передаются как есть
	Limit int        // 0 - без ограничения
}

func (o ListOptions) values() url.Values {
	values := url.Values{}
	for key, vals := range o.Extra {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	return values
}

// ListStudents получает список учеников
func (c *Client) ListStudents(ctx context.Context, opts ListOptions) (*api.StudentsResponse, error) {
	var resp api.StudentsResponse
	if err := c.doRequest(ctx, "GET", "/students", opts.values(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list students request failed: %w", err)
	}
	if resp.Students == nil {
		resp.Students = []models.Student{}
	}
	return &resp, nil
}

// GetStudent получает ученика по id
func (c *Client) GetStudent(ctx context.Context, id string) (*api.StudentResponse, error) {
	var resp api.StudentResponse
	if err := c.doRequest(ctx, "GET", studentPath(id), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get student request failed: %w", err)
	}
	return &resp, nil
}

// CreateStudent создает ученика
func (c *Client) CreateStudent(ctx context.Context, payload api.StudentPayload) (*api.MutationResponse, error) {
	var resp api.MutationResponse
	if err := c.doRequest(ctx, "POST", "/students", nil, payload, &resp); err != nil {
		return nil, fmt.Errorf("create student request failed: %w", err)
	}
	return &resp, nil
}

// UpdateStudent обновляет ученика
func (c *Client) UpdateStudent(ctx context.Context, id string, payload api.StudentPayload) (*api.MutationResponse, error) {
	var resp api.MutationResponse
	if err := c.doRequest(ctx, "PUT", studentPath(id), nil, payload, &resp); err != nil {
		return nil, fmt.Errorf("update student request failed: %w", err)
	}
	return &resp, nil
}

// DeleteStudent удаляет ученика
func (c *Client) DeleteStudent(ctx context.Context, id string) (*api.MutationResponse, error) {
	var resp api.MutationResponse
	if err := c.doRequest(ctx, "DELETE", studentPath(id), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete student request failed: %w", err)
	}
	return &resp, nil
}

// SearchStudents выполняет полнотекстовый поиск на сервере
func (c *Client) SearchStudents(ctx context.Context, query string) (*api.StudentsResponse, error) {
	var resp api.StudentsResponse
	values := url.Values{"q": []string{query}}
	if err := c.doRequest(ctx, "GET", "/students/search", values, nil, &resp); err != nil {
		return nil, fmt.Errorf("search students request failed: %w", err)
	}
	if resp.Students == nil {
		resp.Students = []models.Student{}
	}
	return &resp, nil
}

// CreateStudentsBatch создает несколько учеников одним запросом
func (c *Client) CreateStudentsBatch(ctx context.Context, payloads []api.StudentPayload) (*api.MutationResponse, error) {
	if payloads == nil {
		payloads = []api.StudentPayload{}
	}
	var resp api.MutationResponse
	if err := c.doRequest(ctx, "POST", "/students/batch", nil, payloads, &resp); err != nil {
		return nil, fmt.Errorf("batch create request failed: %w", err)
	}
	return &resp, nil
}

// studentPath экранирует id, чтобы он всегда был одним сегментом пути
func studentPath(id string) string {
	return "/students/" + url.PathEscape(id)
}
