package twinapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

var _ ports.Transport = (*Client)(nil)

func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error) {
	var resp struct {
		Token string              `json:"token"`
		User  *domain.UserProfile `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return "", nil, &domain.RequestError{Endpoint: "/auth/login", Message: "malformed login response"}
	}
	return resp.Token, resp.User, nil
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	body := map[string]any{
		"email":     input.Email,
		"password":  input.Password,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
	}
	if input.DateOfBirth != "" {
		body["dateOfBirth"] = input.DateOfBirth
	}
	if input.Gender != "" {
		body["gender"] = input.Gender
	}
	if input.Height > 0 {
		body["height"] = input.Height
	}
	if input.Weight > 0 {
		body["weight"] = input.Weight
	}

	var resp struct {
		UserID string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var resp struct {
		User *domain.UserProfile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) CurrentHealth(ctx context.Context) (*domain.HealthPayload, error) {
	var resp struct {
		Data *domain.HealthPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/health/current", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = &domain.HealthPayload{}
	}
	return resp.Data, nil
}

// historyItem covers the three per-metric history shapes the service emits.
// Exactly one of the value fields is set depending on the metric kind.
type historyItem struct {
	Date       string   `json:"date"`
	Value      *float64 `json:"value"`
	TotalSleep *float64 `json:"totalSleep"`
	Level      *float64 `json:"level"`
}

func (c *Client) HealthHistory(ctx context.Context, kind domain.MetricKind, days int) ([]domain.HistoryPoint, error) {
	endpoint := fmt.Sprintf("/health/history?days=%d&metric=%s", days, kind)
	var resp struct {
		Data []historyItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	points := make([]domain.HistoryPoint, 0, len(resp.Data))
	for _, item := range resp.Data {
		points = append(points, domain.HistoryPoint{
			Date:  item.Date,
			Value: domain.PickValue(0, domain.Present(item.Value), domain.Present(item.TotalSleep), domain.Present(item.Level)),
		})
	}
	return points, nil
}

func (c *Client) SubmitHealth(ctx context.Context, input ports.HealthInput) error {
	return c.do(ctx, http.MethodPost, "/health/submit", input, nil)
}

func (c *Client) AcademicPerformance(ctx context.Context) (*domain.AcademicPayload, error) {
	var resp struct {
		Data *domain.AcademicPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/academic/performance", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = &domain.AcademicPayload{}
	}
	return resp.Data, nil
}

func (c *Client) SubmitAcademic(ctx context.Context, input ports.AcademicInput) error {
	return c.do(ctx, http.MethodPost, "/academic/submit", input, nil)
}

func (c *Client) Predictions(ctx context.Context) (*domain.PredictionPayload, error) {
	var resp struct {
		Predictions     *domain.PredictionPayload `json:"predictions"`
		Recommendations []string                  `json:"recommendations"`
		GeneratedAt     *domain.Timestamp         `json:"generatedAt"`
	}
	if err := c.do(ctx, http.MethodGet, "/predictions", nil, &resp); err != nil {
		return nil, err
	}
	payload := resp.Predictions
	if payload == nil {
		payload = &domain.PredictionPayload{}
	}
	payload.Recommendations = resp.Recommendations
	payload.GeneratedAt = resp.GeneratedAt
	return payload, nil
}

func (c *Client) Alerts(ctx context.Context, includeResolved bool) ([]domain.Alert, error) {
	endpoint := fmt.Sprintf("/alerts?resolved=%t", includeResolved)
	var resp struct {
		Alerts []domain.Alert `json:"alerts"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

func (c *Client) ResolveAlert(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/alerts/%d/resolve", id), nil, nil)
}

func (c *Client) Devices(ctx context.Context) ([]domain.Device, error) {
	var resp struct {
		Devices []domain.Device `json:"devices"`
	}
	if err := c.do(ctx, http.MethodGet, "/devices", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Devices, nil
}

func (c *Client) Goals(ctx context.Context) (map[string]domain.Goal, error) {
	var resp struct {
		Goals map[string]domain.Goal `json:"goals"`
	}
	if err := c.do(ctx, http.MethodGet, "/goals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Goals, nil
}

func (c *Client) Lifestyle(ctx context.Context) (*domain.LifestylePayload, error) {
	var resp struct {
		Data *domain.LifestylePayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/lifestyle", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = &domain.LifestylePayload{}
	}
	return resp.Data, nil
}
