package servivuelo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/ctsearch/pkg/ctdf"
)

// StatusError is returned when Servivuelo answers with a non 2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type timetablesRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

type timetablesResponse struct {
	TimeTables []ctdf.Timetable `json:"timeTables"`
}

type accommodationsRequest struct {
	ShipID        string `json:"shipID"`
	DepartureDate string `json:"departureDate"`
}

type accommodationsResponse struct {
	Accommodations []ctdf.Accommodation `json:"accommodations"`
}

type pricesRequest struct {
	ShipID        string `json:"shipID"`
	DepartureDate string `json:"departureDate"`
	Accommodation string `json:"accommodation"`
}

func (c *Client) GetTimetables(ctx context.Context, from string, to string, date string, adults int, children int) ([]ctdf.Timetable, error) {
	query := url.Values{}
	query.Set("adults", strconv.Itoa(adults))
	query.Set("childrens", strconv.Itoa(children))

	var response timetablesResponse
	if err := c.post(ctx, "timetables", query, timetablesRequest{From: from, To: to, Date: date}, &response); err != nil {
		return nil, err
	}

	return response.TimeTables, nil
}

func (c *Client) GetAccommodations(ctx context.Context, vehicleID string, departureTime string) ([]ctdf.Accommodation, error) {
	var response accommodationsResponse
	if err := c.post(ctx, "accommodations", nil, accommodationsRequest{ShipID: vehicleID, DepartureDate: departureTime}, &response); err != nil {
		return nil, err
	}

	return response.Accommodations, nil
}

// GetPrice returns the raw price text. The bonus is only sent for adult prices.
func (c *Client) GetPrice(ctx context.Context, vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) (string, error) {
	query := url.Values{}
	query.Set("pax", string(pax))

	if pax == ctdf.PaxTypeAdult && len(bonus) > 0 {
		bonusJSON, err := json.Marshal(bonus)
		if err != nil {
			return "", err
		}
		query.Set("bonus", string(bonusJSON))
	}

	var raw json.RawMessage
	err := c.post(ctx, "prices", query, pricesRequest{
		ShipID:        vehicleID,
		DepartureDate: departureTime,
		Accommodation: accommodation,
	}, &raw)
	if err != nil {
		return "", err
	}

	return decodePrice(raw), nil
}

// decodePrice accepts either a JSON string or a bare number/text body
func decodePrice(raw []byte) string {
	var price string
	if err := json.Unmarshal(raw, &price); err == nil {
		return price
	}

	return strings.TrimSpace(string(raw))
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any, destination any) error {
	requestURL := fmt.Sprintf("%s/%s", c.BaseURL, path)
	if len(query) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, query.Encode())
	}

	requestBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(responseBody)),
		}
	}

	if raw, ok := destination.(*json.RawMessage); ok {
		*raw = responseBody
		return nil
	}

	if err := json.Unmarshal(responseBody, destination); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
