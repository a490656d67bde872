package client

import (
	"context"
	"net/http"

	"furnitrack/internal/models"
)

// Session is the response of a successful login.
type Session struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login performs the credential check and remembers the issued token
// for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee posts a new employee and returns the materialized
// record with server timestamps.
func (c *Client) CreateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	var created models.Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", e, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	var updated models.Employee
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+e.ID, e, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/employees/"+id, nil, nil)
}

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := c.do(ctx, http.MethodGet, "/api/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) CreateLocation(ctx context.Context, l models.Location) (*models.Location, error) {
	var created models.Location
	if err := c.do(ctx, http.MethodPost, "/api/locations", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateLocation(ctx context.Context, l models.Location) (*models.Location, error) {
	var updated models.Location
	if err := c.do(ctx, http.MethodPut, "/api/locations/"+l.ID, l, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/locations/"+id, nil, nil)
}

func (c *Client) ListRecords(ctx context.Context) ([]models.AssemblyRecord, error) {
	var records []models.AssemblyRecord
	if err := c.do(ctx, http.MethodGet, "/api/assembly-records", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) CreateRecord(ctx context.Context, r models.AssemblyRecord) (*models.AssemblyRecord, error) {
	var created models.AssemblyRecord
	if err := c.do(ctx, http.MethodPost, "/api/assembly-records", r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateRecords posts an ordered batch. Either every record is
// persisted or none are.
func (c *Client) CreateRecords(ctx context.Context, records []models.AssemblyRecord) ([]models.AssemblyRecord, error) {
	var created []models.AssemblyRecord
	if err := c.do(ctx, http.MethodPost, "/api/assembly-records/batch", records, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateRecord(ctx context.Context, r models.AssemblyRecord) (*models.AssemblyRecord, error) {
	var updated models.AssemblyRecord
	if err := c.do(ctx, http.MethodPut, "/api/assembly-records/"+r.ID, r, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/assembly-records/"+id, nil, nil)
}

func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings returns the canonical stored row (the server does a
// read-after-write).
func (c *Client) UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error) {
	var stored models.Settings
	if err := c.do(ctx, http.MethodPut, "/api/settings", s, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
