package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lemmy-ingestion/internal/client"
	"lemmy-ingestion/internal/ingest"
	"lemmy-ingestion/internal/parser"
)

// mockAPI implements client.LemmyAPI with canned per-call behavior.
type mockAPI struct {
	getPosts         func(form client.GetPostsForm) (json.RawMessage, error)
	getPost          func(commentID, id *int64) (json.RawMessage, error)
	getComments      func(form client.GetCommentsForm) (json.RawMessage, error)
	getPersonDetails func(form client.GetPersonDetailsForm) (json.RawMessage, error)
	getCommunity     func(id *int64, name *string) (json.RawMessage, error)
	search           func(form client.SearchForm) (json.RawMessage, error)
}

func (m *mockAPI) GetPosts(_ context.Context, form client.GetPostsForm) (json.RawMessage, error) {
	return m.getPosts(form)
}

func (m *mockAPI) GetPost(_ context.Context, commentID, id *int64) (json.RawMessage, error) {
	return m.getPost(commentID, id)
}

func (m *mockAPI) GetComments(_ context.Context, form client.GetCommentsForm) (json.RawMessage, error) {
	return m.getComments(form)
}

func (m *mockAPI) GetPersonDetails(_ context.Context, form client.GetPersonDetailsForm) (json.RawMessage, error) {
	return m.getPersonDetails(form)
}

func (m *mockAPI) GetCommunity(_ context.Context, id *int64, name *string) (json.RawMessage, error) {
	return m.getCommunity(id, name)
}

func (m *mockAPI) Search(_ context.Context, form client.SearchForm) (json.RawMessage, error) {
	return m.search(form)
}

func communityJSON(name string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"community_view": {
			"community": {"id": 3, "name": %q, "title": "Title", "published": "2021-05-01T12:00:00.000000"},
			"counts": {"subscribers": 100, "posts": 10, "comments": 50}
		}
	}`, name))
}

// postsJSON fabricates a page of count posts starting at firstID.
func postsJSON(firstID int64, count int) json.RawMessage {
	views := make([]string, 0, count)
	for i := 0; i < count; i++ {
		views = append(views, fmt.Sprintf(`{
			"post": {"id": %d, "name": "post %d", "published": "2023-06-15T10:30:00.000000"},
			"creator": {"id": 1, "name": "author"},
			"community": {"id": 3, "name": "golang"},
			"counts": {"score": 1, "comments": 0}
		}`, firstID+int64(i), firstID+int64(i)))
	}
	return json.RawMessage(`{"posts":[` + strings.Join(views, ",") + `]}`)
}

func newTestService(api client.LemmyAPI) ingest.Service {
	return ingest.NewService(api, parser.NewLemmyParser(), 25, 300, zerolog.Nop())
}

func TestCommunityPostsSinglePage(t *testing.T) {
	var gotForm client.GetPostsForm
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			require.Nil(t, id)
			require.NotNil(t, name)
			return communityJSON(*name), nil
		},
		getPosts: func(form client.GetPostsForm) (json.RawMessage, error) {
			gotForm = form
			return postsJSON(1, 10), nil
		},
	}

	svc := newTestService(api)
	info, posts, err := svc.CommunityPosts(context.Background(), "golang", 10, "New")
	require.NoError(t, err)

	assert.Equal(t, "golang", info.Name)
	assert.Len(t, posts, 10)
	require.NotNil(t, gotForm.CommunityName)
	assert.Equal(t, "golang", *gotForm.CommunityName)
	require.NotNil(t, gotForm.Limit)
	assert.Equal(t, int64(10), *gotForm.Limit)
	require.NotNil(t, gotForm.Sort)
	assert.Equal(t, "New", *gotForm.Sort)
}

func TestCommunityPostsPaginatesUntilLimit(t *testing.T) {
	var pages []int64
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			return communityJSON(*name), nil
		},
		getPosts: func(form client.GetPostsForm) (json.RawMessage, error) {
			require.NotNil(t, form.Page)
			require.NotNil(t, form.Limit)
			pages = append(pages, *form.Page)
			return postsJSON((*form.Page-1)*50+1, int(*form.Limit)), nil
		},
	}

	svc := newTestService(api)
	_, posts, err := svc.CommunityPosts(context.Background(), "golang", 120, "")
	require.NoError(t, err)

	assert.Len(t, posts, 120)
	// 50 + 50 + 20.
	assert.Equal(t, []int64{1, 2, 3}, pages)

	// IDs must be contiguous across page boundaries.
	for i, post := range posts {
		assert.Equal(t, int64(i+1), post.ID)
	}
}

func TestCommunityPostsStopsOnShortPage(t *testing.T) {
	calls := 0
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			return communityJSON(*name), nil
		},
		getPosts: func(form client.GetPostsForm) (json.RawMessage, error) {
			calls++
			return postsJSON(1, 7), nil
		},
	}

	svc := newTestService(api)
	_, posts, err := svc.CommunityPosts(context.Background(), "tiny", 100, "")
	require.NoError(t, err)

	assert.Len(t, posts, 7)
	assert.Equal(t, 1, calls)
}

func TestCommunityPostsDefaultLimit(t *testing.T) {
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			return communityJSON(*name), nil
		},
		getPosts: func(form client.GetPostsForm) (json.RawMessage, error) {
			require.NotNil(t, form.Limit)
			assert.Equal(t, int64(25), *form.Limit)
			return postsJSON(1, 25), nil
		},
	}

	svc := newTestService(api)
	_, posts, err := svc.CommunityPosts(context.Background(), "golang", 0, "")
	require.NoError(t, err)
	assert.Len(t, posts, 25)
}

func TestCommunityPostsCommunityError(t *testing.T) {
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			return nil, &client.APIError{Status: 404, Code: "couldnt_find_community"}
		},
	}

	svc := newTestService(api)
	_, _, err := svc.CommunityPosts(context.Background(), "missing", 10, "")
	require.Error(t, err)

	var apiErr *client.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestUserActivityCapsLimitAtPageSize(t *testing.T) {
	api := &mockAPI{
		getPersonDetails: func(form client.GetPersonDetailsForm) (json.RawMessage, error) {
			require.NotNil(t, form.Limit)
			assert.Equal(t, int64(50), *form.Limit)
			require.NotNil(t, form.Username)
			assert.Equal(t, "alice", *form.Username)
			return json.RawMessage(`{
				"person_view": {
					"person": {"id": 7, "name": "alice", "published": "2022-01-01T00:00:00.000000"},
					"counts": {"post_score": 1, "comment_score": 2, "post_count": 3, "comment_count": 4}
				},
				"posts": [],
				"comments": []
			}`), nil
		},
	}

	svc := newTestService(api)
	activity, err := svc.UserActivity(context.Background(), "alice", 500)
	require.NoError(t, err)
	assert.Equal(t, "alice", activity.UserInfo.Username)
}

func TestPostDetailFetchesPostAndComments(t *testing.T) {
	var gotPostID *int64
	var gotCommentsForm client.GetCommentsForm
	api := &mockAPI{
		getPost: func(commentID, id *int64) (json.RawMessage, error) {
			require.Nil(t, commentID)
			gotPostID = id
			return json.RawMessage(`{
				"post_view": {
					"post": {"id": 100, "name": "Title", "published": "2023-06-15T10:30:00.000000"},
					"creator": {"id": 1, "name": "op"},
					"community": {"id": 3, "name": "golang"},
					"counts": {"score": 1, "comments": 1}
				}
			}`), nil
		},
		getComments: func(form client.GetCommentsForm) (json.RawMessage, error) {
			gotCommentsForm = form
			return json.RawMessage(`{
				"comments": [
					{
						"comment": {"id": 1, "content": "hi", "path": "0.1", "published": "2023-06-15T11:00:00.000000"},
						"creator": {"id": 2, "name": "alice"},
						"counts": {"score": 1}
					}
				]
			}`), nil
		},
	}

	svc := newTestService(api)
	detail, err := svc.PostDetail(context.Background(), 100)
	require.NoError(t, err)

	require.NotNil(t, gotPostID)
	assert.Equal(t, int64(100), *gotPostID)
	require.NotNil(t, gotCommentsForm.PostID)
	assert.Equal(t, int64(100), *gotCommentsForm.PostID)
	require.NotNil(t, gotCommentsForm.Limit)
	assert.Equal(t, int64(300), *gotCommentsForm.Limit)

	assert.Equal(t, int64(100), detail.Post.ID)
	assert.Len(t, detail.Comments, 1)
}

func TestSearchForwardsOptions(t *testing.T) {
	var gotForm client.SearchForm
	api := &mockAPI{
		search: func(form client.SearchForm) (json.RawMessage, error) {
			gotForm = form
			return json.RawMessage(`{"type_":"All","posts":[],"comments":[],"communities":[]}`), nil
		},
	}

	svc := newTestService(api)
	_, err := svc.Search(context.Background(), "concurrency", ingest.SearchOptions{
		Community:   "golang",
		Sort:        "TopAll",
		ListingType: "Local",
		Type:        "Posts",
		Limit:       20,
		Page:        2,
	})
	require.NoError(t, err)

	assert.Equal(t, "concurrency", gotForm.Q)
	require.NotNil(t, gotForm.CommunityName)
	assert.Equal(t, "golang", *gotForm.CommunityName)
	require.NotNil(t, gotForm.Type)
	assert.Equal(t, "Posts", *gotForm.Type)
	require.NotNil(t, gotForm.Limit)
	assert.Equal(t, int64(20), *gotForm.Limit)
	require.NotNil(t, gotForm.Page)
	assert.Equal(t, int64(2), *gotForm.Page)
}

func TestSearchZeroOptionsLeftUnset(t *testing.T) {
	api := &mockAPI{
		search: func(form client.SearchForm) (json.RawMessage, error) {
			assert.Nil(t, form.CommunityName)
			assert.Nil(t, form.Sort)
			assert.Nil(t, form.Limit)
			assert.Nil(t, form.Page)
			return json.RawMessage(`{"type_":"All","posts":[]}`), nil
		},
	}

	svc := newTestService(api)
	_, err := svc.Search(context.Background(), "query", ingest.SearchOptions{})
	require.NoError(t, err)
}

func TestCommunityPostsContextCancelled(t *testing.T) {
	api := &mockAPI{
		getCommunity: func(id *int64, name *string) (json.RawMessage, error) {
			return communityJSON(*name), nil
		},
		getPosts: func(form client.GetPostsForm) (json.RawMessage, error) {
			return postsJSON(1, 50), nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(api)
	_, _, err := svc.CommunityPosts(ctx, "golang", 100, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
