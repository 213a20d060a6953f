package models

import "time"

// Post represents an ingested Lemmy post
// swagger:model Post
type Post struct {
	// Lemmy post ID
	ID int64 `json:"id"`
	// Compact URL-safe form of the post ID
	Shortcode string `json:"shortcode"`
	// Post title
	Title string `json:"title"`
	// Post body/content
	Body string `json:"body,omitempty"`
	// Author's username
	Author string `json:"author"`
	// Community the post belongs to
	Community string `json:"community"`
	// Post score (upvotes minus downvotes)
	Score int64 `json:"score"`
	// Number of comments on the post
	CommentCount int64 `json:"comment_count"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// True if the post is marked NSFW
	NSFW bool `json:"nsfw,omitempty"`
	// URL/link shared in the post
	URL string `json:"url,omitempty"`
}

// Comment represents an ingested Lemmy comment
// swagger:model Comment
type Comment struct {
	// Comment ID
	ID int64 `json:"id"`
	// Compact URL-safe form of the comment ID
	Shortcode string `json:"shortcode"`
	// Comment author's username
	Author string `json:"author"`
	// Comment body text
	Body string `json:"body"`
	// Comment score
	Score int64 `json:"score"`
	// Comment creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Nested comment replies
	Replies []Comment `json:"replies,omitempty"`
}

// UserInfo represents a Lemmy user's profile information
// swagger:model UserInfo
type UserInfo struct {
	// Username
	Username string `json:"username"`
	// Display name, if set
	DisplayName string `json:"display_name,omitempty"`
	// True if the user is an instance admin
	Admin bool `json:"admin,omitempty"`
	// Cumulative post score
	PostScore int64 `json:"post_score"`
	// Cumulative comment score
	CommentScore int64 `json:"comment_score"`
	// Number of posts created
	PostCount int64 `json:"post_count"`
	// Number of comments created
	CommentCount int64 `json:"comment_count"`
	// Account creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// PostDetail represents a Lemmy post with its comment tree
// swagger:model PostDetail
type PostDetail struct {
	// Post information
	Post Post `json:"post"`
	// Comments on the post
	Comments []Comment `json:"comments"`
}

// UserActivity represents all ingested activity for a specific user
// swagger:model UserActivity
type UserActivity struct {
	// User profile information
	UserInfo UserInfo `json:"user_info"`
	// Posts created by the user
	Posts []Post `json:"posts,omitempty"`
	// Comments made by the user
	Comments []Comment `json:"comments,omitempty"`
}

// CommunityInfo represents a Lemmy community's profile information
// swagger:model CommunityInfo
type CommunityInfo struct {
	// Community ID
	ID int64 `json:"id"`
	// Compact URL-safe form of the community ID
	Shortcode string `json:"shortcode"`
	// Community name (URL segment)
	Name string `json:"name"`
	// Community title
	Title string `json:"title"`
	// Community description
	Description string `json:"description,omitempty"`
	// Number of subscribers
	Subscribers int64 `json:"subscribers"`
	// Number of posts
	Posts int64 `json:"posts"`
	// Number of comments
	Comments int64 `json:"comments"`
	// True if the community is marked NSFW
	NSFW bool `json:"nsfw,omitempty"`
	// Community creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// CommunityPosts represents a page of ingested posts for a community
// swagger:model CommunityPosts
type CommunityPosts struct {
	// Community profile information
	Community CommunityInfo `json:"community"`
	// List of posts
	Posts []Post `json:"posts"`
	// Metadata about the request
	Meta struct {
		// Requested limit
		RequestedLimit int64 `json:"requested_limit"`
		// Actual count of posts returned
		ActualCount int `json:"actual_count"`
		// Processing time in milliseconds
		ProcessingTimeMs int64 `json:"processing_time_ms"`
	} `json:"meta"`
}

// SearchResult represents a response for the search endpoint
// swagger:model SearchResult
type SearchResult struct {
	// Posts matching the search
	Posts []Post `json:"posts"`
	// Comments matching the search
	Comments []Comment `json:"comments,omitempty"`
	// Communities matching the search
	Communities []CommunityInfo `json:"communities,omitempty"`
	// Metadata about the search
	Meta struct {
		// Search query
		Query string `json:"query"`
		// Count of results returned
		Count int `json:"count"`
		// Processing time in milliseconds
		ProcessingTimeMs int64 `json:"processing_time_ms"`
	} `json:"meta"`
}

// HTTPError represents an HTTP error response
// swagger:model HTTPError
type HTTPError struct {
	// HTTP status code
	Code int `json:"code"`
	// Error message
	Message string `json:"message"`
}
