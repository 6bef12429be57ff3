package ai

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
	"unicode/utf8"

	"truckboard/internal/entities"
	"truckboard/internal/pkg/config"
	retrierconfig "truckboard/pkg/retrier"
	"truckboard/pkg/retrier/backoff_adapter"
)

const (
	serviceName         = "ai-collaborator"
	chatCompletionsPath = "/chat/completions"

	// Raw upstream content attached to decode errors is capped so the
	// error text stays readable.
	maxRawSnippet    = 512
	maxResponseBytes = 1 << 20
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway talks to an OpenAI-compatible chat completions endpoint and
// holds it to a structured-output contract: the model must answer with
// a single JSON object, decoded strictly.
type Gateway struct {
	apiKey  string
	baseURL string
	model   string
	client  httpDoer
	retrier retrier
}

func New(cfg config.AI) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		retrier: backoff_adapter.New(retryConfig),
	}
}

// Configured reports whether an API key is present. Without one every
// call answers ErrNotConfigured without touching the network.
func (g *Gateway) Configured() bool {
	return g.apiKey != ""
}

const optimizeSystemPrompt = `You are a route planner for a delivery truck driver.
Reply with a single JSON object and nothing else. The object must have exactly these keys:
"waypoint_order" (array of delivery ids, each given id exactly once, in the best driving order),
"distance_km" (number, estimated total distance),
"duration_minutes" (integer, estimated total driving time),
"summary" (short string explaining the ordering).`

func (g *Gateway) OptimizeRoute(ctx context.Context, route entities.Route, stops []entities.Delivery) (*entities.RouteSuggestion, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	content, err := g.chatJSON(ctx, "OptimizeRoute", optimizeSystemPrompt, optimizeUserPrompt(route, stops))
	if err != nil {
		return nil, fmt.Errorf("gateway ai, optimize route: %w", err)
	}

	var payload suggestionPayload
	if err := decodeStrict(content, &payload); err != nil {
		return nil, fmt.Errorf("gateway ai, optimize route: %w", err)
	}

	return &entities.RouteSuggestion{
		WaypointOrder:   payload.WaypointOrder,
		DistanceKM:      payload.DistanceKM,
		DurationMinutes: payload.DurationMinutes,
		Summary:         payload.Summary,
	}, nil
}

func optimizeUserPrompt(route entities.Route, stops []entities.Delivery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan the driving order for %s.\n", route.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Deliveries to order (%d):\n", len(stops))
	for _, stop := range stops {
		fmt.Fprintf(&b, "- id %d: %s", stop.ID, stop.Destination)
		if stop.Address != "" {
			fmt.Fprintf(&b, ", %s", stop.Address)
		}
		fmt.Fprintf(&b, ", scheduled %s, status %s\n", stop.ScheduledAt.Format(time.RFC3339), stop.Status)
	}
	b.WriteString("Use every id exactly once in waypoint_order.")
	return b.String()
}

const recommendSystemPrompt = `You are an assistant for a delivery truck driver planning the day.
Reply with a single JSON object and nothing else. The object must have exactly one key:
"recommendations" (array of short strings, at most five, practical tips for the day described by the user).`

func (g *Gateway) Recommendations(ctx context.Context, deliveries []entities.Delivery, entries []entities.ScheduleEntry) ([]string, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	content, err := g.chatJSON(ctx, "Recommendations", recommendSystemPrompt, recommendUserPrompt(deliveries, entries))
	if err != nil {
		return nil, fmt.Errorf("gateway ai, recommendations: %w", err)
	}

	var payload recommendationsPayload
	if err := decodeStrict(content, &payload); err != nil {
		return nil, fmt.Errorf("gateway ai, recommendations: %w", err)
	}

	if payload.Recommendations == nil {
		payload.Recommendations = []string{}
	}
	return payload.Recommendations, nil
}

func recommendUserPrompt(deliveries []entities.Delivery, entries []entities.ScheduleEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today there are %d deliveries and %d calendar entries.\n", len(deliveries), len(entries))
	for _, d := range deliveries {
		fmt.Fprintf(&b, "- delivery %d to %s at %s, status %s\n", d.ID, d.Destination, d.ScheduledAt.Format("15:04"), d.Status)
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s %q at %s\n", e.Type, e.Title, e.StartAt.Format("15:04"))
	}
	return b.String()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type suggestionPayload struct {
	WaypointOrder   []int64 `json:"waypoint_order"`
	DistanceKM      float64 `json:"distance_km"`
	DurationMinutes int64   `json:"duration_minutes"`
	Summary         string  `json:"summary"`
}

type recommendationsPayload struct {
	Recommendations []string `json:"recommendations"`
}

func (g *Gateway) chatJSON(ctx context.Context, method, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var content string
	err = g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		var reqErr error
		content, reqErr = g.doRequest(ctx, body)
		return reqErr
	})
	if err != nil {
		var upstream *upstreamError
		switch {
		case errors.As(err, &upstream):
			return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, upstream.status, upstream.message)
		case errors.Is(err, ErrBadPayload):
			return "", err
		default:
			return "", fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	return content, nil
}

func (g *Gateway) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &transportError{err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &transportError{err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &upstreamError{status: resp.StatusCode, message: upstreamMessage(raw)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("%w: decode reply: %v: %s", ErrBadPayload, err, snippet(string(raw)))
	}
	if len(envelope.Choices) == 0 {
		return "", fmt.Errorf("%w: reply has no choices: %s", ErrBadPayload, snippet(string(raw)))
	}

	return envelope.Choices[0].Message.Content, nil
}

// decodeStrict holds the model to the agreed shape: one JSON object,
// known keys only, nothing after it.
func decodeStrict(content string, dst interface{}) error {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrBadPayload, err, snippet(content))
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after json object: %s", ErrBadPayload, snippet(content))
	}
	return nil
}

func upstreamMessage(raw []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return snippet(string(raw))
}

func snippet(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= maxRawSnippet {
		return raw
	}
	// Back the cut off to a rune start so the detail stays valid UTF-8.
	cut := maxRawSnippet
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "..."
}

type upstreamError struct {
	status  int
	message string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.message)
}

type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var upstream *upstreamError
	if errors.As(err, &upstream) {
		return upstream.status == http.StatusTooManyRequests || upstream.status >= http.StatusInternalServerError
	}

	var transport *transportError
	return errors.As(err, &transport)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	CollaboratorRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		CollaboratorRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var upstream *upstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("%d", upstream.status)
	}
	if errors.Is(err, ErrBadPayload) {
		return "bad_payload"
	}
	return "transport_error"
}
