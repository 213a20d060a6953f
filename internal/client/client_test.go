package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterParams(t *testing.T) {
	var nilInt *int64
	limit := int64(10)

	clean := filterParams(Params{
		"limit":     &limit,
		"page":      nilInt,
		"sort":      nil,
		"self":      "ignored",
		"community": "golang",
	})

	assert.Equal(t, Params{
		"limit":     int64(10),
		"community": "golang",
	}, clean)
}

func TestFilterParamsEmptyForm(t *testing.T) {
	assert.Empty(t, filterParams(nil))
	assert.Empty(t, filterParams(Params{"a": nil}))
}

func TestGetSerializesQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"posts":[]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, WithAuth("token123"))
	_, err := c.GetPosts(context.Background(), GetPostsForm{
		CommunityName: Ptr("golang"),
		Limit:         Ptr(int64(25)),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v3/post/list", gotPath)
	assert.Equal(t, "golang", gotQuery["community_name"][0])
	assert.Equal(t, "25", gotQuery["limit"][0])
	assert.Equal(t, "token123", gotQuery["auth"][0])
	assert.NotContains(t, gotQuery, "community_id")
	assert.NotContains(t, gotQuery, "sort")
}

func TestPostSerializesJSONBody(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gojson.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"post_view":{}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, WithAuth("token123"))
	_, err := c.CreatePost(context.Background(), CreatePostForm{
		CommunityID: 7,
		Name:        "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, float64(7), gotBody["community_id"])
	assert.Equal(t, "hello", gotBody["name"])
	assert.Equal(t, "token123", gotBody["auth"])
	assert.NotContains(t, gotBody, "body")
	assert.NotContains(t, gotBody, "honeypot")
}

func TestFormPlacementDefaultsToMethod(t *testing.T) {
	type capture struct {
		query string
		body  string
	}
	var got capture
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		got = capture{query: r.URL.RawQuery, body: string(data)}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)

	// With no explicit placement, GET serializes to the query string.
	_, err := c.fireRequest(context.Background(), "/post/list", http.MethodGet, Params{"limit": 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, "limit=5", got.query)
	assert.Empty(t, got.body)

	// And POST serializes to a JSON body.
	_, err = c.fireRequest(context.Background(), "/post", http.MethodPost, Params{"limit": 5}, nil)
	require.NoError(t, err)
	assert.Empty(t, got.query)
	assert.JSONEq(t, `{"limit":5}`, got.body)
}

func TestPutMethod(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"post_view":{}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.SavePost(context.Background(), 42, true)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestAnonymousClientSendsNoAuth(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"site_view":{}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.GetSite(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "auth")
}

func TestLoginUnwrapsJWT(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/user/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jwt":"abc123","registration_created":false,"verify_email_sent":false}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	token, err := c.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestAPIErrorFromErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"couldnt_find_post"}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.GetPost(context.Background(), nil, Ptr(int64(99)))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "couldnt_find_post", apiErr.Code)
	assert.Equal(t, "[404] Lemmy API returned COULDNT_FIND_POST exception", err.Error())
}

func TestGenericErrorForNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream dead</html>"))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.GetPosts(context.Background(), GetPostsForm{})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "[502] generic error encountered while trying to get /post/list", err.Error())
}

func TestGenericErrorForJSONWithoutErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"no error key here"}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.LeaveAdmin(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "[500] generic error encountered while trying to post /user/leave_admin")
}

func TestCustomDeserializer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jwt":"xyz"}`))
	}))
	defer srv.Close()

	called := false
	c := New(srv.Client(), srv.URL, WithDeserializer(func(data []byte, v any) error {
		called = true
		return gojson.Unmarshal(data, v)
	}))

	token, err := c.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "xyz", token)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL+"/")
	_, err := c.GetSite(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/site", gotPath)
}

func TestQueryValue(t *testing.T) {
	assert.Equal(t, "golang", queryValue("golang"))
	assert.Equal(t, "true", queryValue(true))
	assert.Equal(t, "42", queryValue(42))
	assert.Equal(t, "42", queryValue(int64(42)))
	assert.Equal(t, "1.5", queryValue(1.5))
}

func TestParamsFromStructDropsNilFields(t *testing.T) {
	form, err := paramsFromStruct(GetCommentsForm{
		PostID: Ptr(int64(5)),
		Limit:  Ptr(int64(300)),
	})
	require.NoError(t, err)
	assert.Len(t, form, 2)
	assert.Equal(t, float64(5), form["post_id"])
	assert.Equal(t, float64(300), form["limit"])
}
