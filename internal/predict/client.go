package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/models"

	"github.com/sony/gobreaker/v2"
)

const DefaultTimeout = 10 * time.Second

var ErrUnavailable = errors.New("prediction service unavailable")

type PredictRequest struct {
	Username string         `json:"username"`
	UserData *models.Fields `json:"user_data"`
}

type Recommendation struct {
	Attribute string `json:"attribute"`
	Count     int    `json:"count"`
}

type Prediction struct {
	PredictedFootprint float64          `json:"predicted_footprint"`
	Recommendations    []Recommendation `json:"recommendations"`
}

// StatusError is returned when the prediction service answers with a non-200 status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("prediction service returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("prediction service returned %d", e.Code)
}

// Client calls the footprint prediction service. Calls go through a circuit
// breaker that opens after five consecutive transport or 5xx failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*Prediction]
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[*Prediction](gobreaker.Settings{
			Name:        "predictor",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				var se *StatusError
				// a 4xx is the caller's fault, not the service's
				return err == nil || (errors.As(err, &se) && se.Code < 500)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("predictor circuit breaker state changed")
			},
		}),
	}
}

func (c *Client) Predict(ctx context.Context, username string, userData *models.Fields) (*Prediction, error) {
	p, err := c.breaker.Execute(func() (*Prediction, error) {
		return c.predict(ctx, username, userData)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return p, err
}

func (c *Client) predict(ctx context.Context, username string, userData *models.Fields) (*Prediction, error) {
	reqBody, err := json.Marshal(PredictRequest{Username: username, UserData: userData})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Error}
	}

	var prediction Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}
	if prediction.Recommendations == nil {
		prediction.Recommendations = []Recommendation{}
	}
	return &prediction, nil
}
