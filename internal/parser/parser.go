package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"

	"lemmy-ingestion/internal/models"
)

// Lemmy timestamps are naive (no zone) on most instances and RFC3339 on
// newer ones.
const naiveTimeLayout = "2006-01-02T15:04:05.999999"

type LemmyParser struct{}

func NewLemmyParser() *LemmyParser {
	return &LemmyParser{}
}

func (p *LemmyParser) ParsePosts(ctx context.Context, data json.RawMessage) ([]models.Post, error) {
	var resp models.GetPostsResponse
	if err := gojson.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse post list JSON: %w", err)
	}

	posts := make([]models.Post, 0, len(resp.Posts))
	for _, view := range resp.Posts {
		posts = append(posts, postFromView(view))
	}
	return posts, nil
}

func (p *LemmyParser) ParsePost(ctx context.Context, postData, commentData json.RawMessage) (models.PostDetail, error) {
	var resp models.GetPostResponse
	if err := gojson.Unmarshal(postData, &resp); err != nil {
		return models.PostDetail{}, fmt.Errorf("parse post JSON: %w", err)
	}

	detail := models.PostDetail{
		Post:     postFromView(resp.PostView),
		Comments: []models.Comment{},
	}

	if len(commentData) > 0 {
		var comments models.GetCommentsResponse
		if err := gojson.Unmarshal(commentData, &comments); err != nil {
			return models.PostDetail{}, fmt.Errorf("parse comment list JSON: %w", err)
		}
		detail.Comments = buildCommentTree(comments.Comments)
	}

	return detail, nil
}

func (p *LemmyParser) ParsePersonDetails(ctx context.Context, data json.RawMessage) (models.UserActivity, error) {
	var resp models.GetPersonDetailsResponse
	if err := gojson.Unmarshal(data, &resp); err != nil {
		return models.UserActivity{}, fmt.Errorf("parse person details JSON: %w", err)
	}

	activity := models.UserActivity{
		UserInfo: models.UserInfo{
			Username:     resp.PersonView.Person.Name,
			DisplayName:  resp.PersonView.Person.DisplayName,
			Admin:        resp.PersonView.Person.Admin,
			PostScore:    resp.PersonView.Counts.PostScore,
			CommentScore: resp.PersonView.Counts.CommentScore,
			PostCount:    resp.PersonView.Counts.PostCount,
			CommentCount: resp.PersonView.Counts.CommentCount,
			CreatedAt:    parseTime(resp.PersonView.Person.Published),
		},
	}

	for _, view := range resp.Posts {
		activity.Posts = append(activity.Posts, postFromView(view))
	}
	for _, view := range resp.Comments {
		activity.Comments = append(activity.Comments, commentFromView(view))
	}

	return activity, nil
}

func (p *LemmyParser) ParseCommunity(ctx context.Context, data json.RawMessage) (models.CommunityInfo, error) {
	var resp models.GetCommunityResponse
	if err := gojson.Unmarshal(data, &resp); err != nil {
		return models.CommunityInfo{}, fmt.Errorf("parse community JSON: %w", err)
	}
	return communityFromView(resp.CommunityView), nil
}

func (p *LemmyParser) ParseSearch(ctx context.Context, data json.RawMessage) (models.SearchResult, error) {
	var resp models.LemmySearchResponse
	if err := gojson.Unmarshal(data, &resp); err != nil {
		return models.SearchResult{}, fmt.Errorf("parse search JSON: %w", err)
	}

	result := models.SearchResult{Posts: []models.Post{}}
	for _, view := range resp.Posts {
		result.Posts = append(result.Posts, postFromView(view))
	}
	for _, view := range resp.Comments {
		result.Comments = append(result.Comments, commentFromView(view))
	}
	for _, view := range resp.Communities {
		result.Communities = append(result.Communities, communityFromView(view))
	}
	return result, nil
}

func postFromView(view models.PostView) models.Post {
	return models.Post{
		ID:           view.Post.ID,
		Shortcode:    models.Shortcode(uint32(view.Post.ID)),
		Title:        view.Post.Name,
		Body:         view.Post.Body,
		Author:       view.Creator.Name,
		Community:    view.Community.Name,
		Score:        view.Counts.Score,
		CommentCount: view.Counts.Comments,
		CreatedAt:    parseTime(view.Post.Published),
		NSFW:         view.Post.NSFW,
		URL:          view.Post.URL,
	}
}

func commentFromView(view models.CommentView) models.Comment {
	return models.Comment{
		ID:        view.Comment.ID,
		Shortcode: models.Shortcode(uint32(view.Comment.ID)),
		Author:    view.Creator.Name,
		Body:      view.Comment.Content,
		Score:     view.Counts.Score,
		CreatedAt: parseTime(view.Comment.Published),
	}
}

func communityFromView(view models.CommunityView) models.CommunityInfo {
	return models.CommunityInfo{
		ID:          view.Community.ID,
		Shortcode:   models.Shortcode(uint32(view.Community.ID)),
		Name:        view.Community.Name,
		Title:       view.Community.Title,
		Description: view.Community.Description,
		Subscribers: view.Counts.Subscribers,
		Posts:       view.Counts.Posts,
		Comments:    view.Counts.Comments,
		NSFW:        view.Community.NSFW,
		CreatedAt:   parseTime(view.Community.Published),
	}
}

// buildCommentTree nests flat comment views using their materialized path
// ("0.<ancestor>...<id>"); the segment before a comment's own ID is its
// parent, 0 meaning top level.
func buildCommentTree(views []models.CommentView) []models.Comment {
	flat := make(map[int64]models.Comment, len(views))
	children := make(map[int64][]int64)
	var roots []int64

	for _, view := range views {
		flat[view.Comment.ID] = commentFromView(view)
	}

	for _, view := range views {
		parentID := int64(0)
		segments := strings.Split(view.Comment.Path, ".")
		if len(segments) >= 2 {
			id, err := strconv.ParseInt(segments[len(segments)-2], 10, 64)
			if err == nil {
				parentID = id
			}
		}

		// Comments whose parent fell outside the fetched page surface at
		// the top level rather than being dropped.
		if _, ok := flat[parentID]; parentID == 0 || !ok {
			roots = append(roots, view.Comment.ID)
		} else {
			children[parentID] = append(children[parentID], view.Comment.ID)
		}
	}

	var assemble func(id int64) models.Comment
	assemble = func(id int64) models.Comment {
		comment := flat[id]
		for _, childID := range children[id] {
			comment.Replies = append(comment.Replies, assemble(childID))
		}
		return comment
	}

	tree := make([]models.Comment, 0, len(roots))
	for _, id := range roots {
		tree = append(tree, assemble(id))
	}
	return tree
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts
	}
	ts, err := time.Parse(naiveTimeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
