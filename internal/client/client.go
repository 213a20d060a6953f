// Package client is a typed binding for the Lemmy HTTP API
// (https://join-lemmy.org/api/classes/LemmyHttp.html). Every exported
// endpoint method performs exactly one HTTP round trip and returns the raw
// decoded JSON; callers interpret the shape per the published schema.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const apiVersion = "v3"

// Params is a flat mapping of endpoint parameter names to values. Entries
// holding nil (including typed nil pointers and slices) are treated as
// absent and never serialized.
type Params map[string]any

// Deserializer decodes a JSON payload into v. The default is goccy/go-json;
// embedding applications may supply their own.
type Deserializer func(data []byte, v any) error

// Client issues authenticated requests against a single Lemmy instance. All
// state is read-only after construction, so a Client is safe for concurrent
// use.
type Client struct {
	http    *http.Client
	baseURL string
	auth    string
	deJSON  Deserializer
	logger  zerolog.Logger
}

// Option configures a Client at construction.
type Option func(*Client)

// WithAuth sets the auth token sent under the reserved "auth" form key on
// every request.
func WithAuth(token string) Option {
	return func(c *Client) { c.auth = token }
}

// WithDeserializer replaces the default JSON deserializer.
func WithDeserializer(fn Deserializer) Option {
	return func(c *Client) { c.deJSON = fn }
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a Client for the Lemmy instance at baseURL (scheme and host,
// no /api/v3 suffix). The HTTP session, including timeouts and proxying, is
// owned by the caller; nil means http.DefaultClient.
func New(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		deJSON:  gojson.Unmarshal,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fireRequest performs one round trip against route and normalizes the
// outcome: 200 yields the raw JSON body, a JSON error envelope yields an
// *APIError, anything else a generic error. formInParams decides between
// query-parameter and JSON-body serialization; nil defaults it to
// "method is GET".
func (c *Client) fireRequest(ctx context.Context, route, method string, form Params, formInParams *bool) (json.RawMessage, error) {
	inParams := method == http.MethodGet
	if formInParams != nil {
		inParams = *formInParams
	}

	clean := filterParams(form)
	if c.auth != "" {
		clean["auth"] = c.auth
	}

	endpoint := c.baseURL + "/api/" + apiVersion + route

	var req *http.Request
	var err error
	if inParams {
		q := url.Values{}
		for k, v := range clean {
			q.Set(k, queryValue(v))
		}
		if enc := q.Encode(); enc != "" {
			endpoint += "?" + enc
		}
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	} else {
		var body []byte
		body, err = gojson.Marshal(clean)
		if err != nil {
			return nil, fmt.Errorf("encode form for %s: %w", route, err)
		}
		req, err = http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", route, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(method), route, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body for %s: %w", route, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("route", route).
		Int("status", resp.StatusCode).
		Msg("lemmy api request")

	if resp.StatusCode != http.StatusOK {
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			var envelope struct {
				Error string `json:"error"`
			}
			if derr := c.deJSON(data, &envelope); derr == nil && envelope.Error != "" {
				return nil, &APIError{Status: resp.StatusCode, Code: envelope.Error}
			}
		}
		return nil, fmt.Errorf("[%d] generic error encountered while trying to %s %s",
			resp.StatusCode, strings.ToLower(method), route)
	}

	return json.RawMessage(data), nil
}

func (c *Client) get(ctx context.Context, endpoint string, form Params) (json.RawMessage, error) {
	inParams := true
	return c.fireRequest(ctx, endpoint, http.MethodGet, form, &inParams)
}

func (c *Client) post(ctx context.Context, endpoint string, form Params) (json.RawMessage, error) {
	inParams := false
	return c.fireRequest(ctx, endpoint, http.MethodPost, form, &inParams)
}

func (c *Client) put(ctx context.Context, endpoint string, form Params) (json.RawMessage, error) {
	inParams := false
	return c.fireRequest(ctx, endpoint, http.MethodPut, form, &inParams)
}

// filterParams drops absent values and the reserved "self" key, and
// dereferences pointers so downstream serialization sees plain values.
func filterParams(form Params) Params {
	clean := make(Params, len(form))
	for k, v := range form {
		if k == "self" || v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			if rv.IsNil() {
				continue
			}
		}
		for rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		clean[k] = rv.Interface()
	}
	return clean
}

// queryValue stringifies a parameter for query serialization.
func queryValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// paramsFromStruct flattens an endpoint form struct into Params via its
// JSON tags; nil optional fields are omitted by their omitempty tags.
func paramsFromStruct(v any) (Params, error) {
	data, err := gojson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode endpoint form: %w", err)
	}
	var form Params
	if err := gojson.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("flatten endpoint form: %w", err)
	}
	return form, nil
}
