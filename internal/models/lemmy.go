package models

// Wire-format entities mirroring the Lemmy HTTP API schema
// (https://join-lemmy.org/api). Field sets are hand-synced from the
// published interface list and carry no behavior.

// LemmyPost mirrors https://join-lemmy.org/api/interfaces/Post.html
type LemmyPost struct {
	ID                int64  `json:"id"`
	ApID              string `json:"ap_id"`
	Body              string `json:"body,omitempty"`
	CommunityID       int64  `json:"community_id"`
	CreatorID         int64  `json:"creator_id"`
	Deleted           bool   `json:"deleted"`
	EmbedDescription  string `json:"embed_description,omitempty"`
	EmbedTitle        string `json:"embed_title,omitempty"`
	EmbedVideoURL     string `json:"embed_video_url,omitempty"`
	FeaturedCommunity bool   `json:"featured_community"`
	FeaturedLocal     bool   `json:"featured_local"`
	LanguageID        int64  `json:"language_id"`
	Local             bool   `json:"local"`
	Locked            bool   `json:"locked"`
	Name              string `json:"name"`
	NSFW              bool   `json:"nsfw"`
	Published         string `json:"published"`
	Removed           bool   `json:"removed"`
	ThumbnailURL      string `json:"thumbnail_url,omitempty"`
	Updated           string `json:"updated,omitempty"`
	URL               string `json:"url,omitempty"`
}

// LemmyComment mirrors https://join-lemmy.org/api/interfaces/Comment.html
type LemmyComment struct {
	ID            int64  `json:"id"`
	ApID          string `json:"ap_id"`
	Content       string `json:"content"`
	CreatorID     int64  `json:"creator_id"`
	Deleted       bool   `json:"deleted"`
	Distinguished bool   `json:"distinguished"`
	LanguageID    int64  `json:"language_id"`
	Local         bool   `json:"local"`
	Path          string `json:"path"`
	PostID        int64  `json:"post_id"`
	Published     string `json:"published"`
	Removed       bool   `json:"removed"`
	Updated       string `json:"updated,omitempty"`
}

// LemmyCommunity mirrors https://join-lemmy.org/api/interfaces/Community.html
type LemmyCommunity struct {
	ID                      int64  `json:"id"`
	ActorID                 string `json:"actor_id"`
	Banner                  string `json:"banner,omitempty"`
	Deleted                 bool   `json:"deleted"`
	Description             string `json:"description,omitempty"`
	Hidden                  bool   `json:"hidden"`
	Icon                    string `json:"icon,omitempty"`
	InstanceID              int64  `json:"instance_id"`
	Local                   bool   `json:"local"`
	Name                    string `json:"name"`
	NSFW                    bool   `json:"nsfw"`
	PostingRestrictedToMods bool   `json:"posting_restricted_to_mods"`
	Published               string `json:"published"`
	Removed                 bool   `json:"removed"`
	Title                   string `json:"title"`
	Updated                 string `json:"updated,omitempty"`
}

// LemmyPerson mirrors https://join-lemmy.org/api/interfaces/Person.html
type LemmyPerson struct {
	ID           int64  `json:"id"`
	ActorID      string `json:"actor_id"`
	Admin        bool   `json:"admin"`
	Avatar       string `json:"avatar,omitempty"`
	BanExpires   string `json:"ban_expires,omitempty"`
	Banned       bool   `json:"banned"`
	Banner       string `json:"banner,omitempty"`
	Bio          string `json:"bio,omitempty"`
	BotAccount   bool   `json:"bot_account"`
	Deleted      bool   `json:"deleted"`
	DisplayName  string `json:"display_name,omitempty"`
	InboxURL     string `json:"inbox_url,omitempty"`
	InstanceID   int64  `json:"instance_id"`
	Local        bool   `json:"local"`
	MatrixUserID string `json:"matrix_user_id,omitempty"`
	Name         string `json:"name"`
	Published    string `json:"published"`
	Updated      string `json:"updated,omitempty"`
}

// PostAggregates mirrors https://join-lemmy.org/api/interfaces/PostAggregates.html
type PostAggregates struct {
	ID                     int64  `json:"id"`
	Comments               int64  `json:"comments"`
	Downvotes              int64  `json:"downvotes"`
	FeaturedCommunity      bool   `json:"featured_community"`
	FeaturedLocal          bool   `json:"featured_local"`
	HotRank                int64  `json:"hot_rank"`
	HotRankActive          int64  `json:"hot_rank_active"`
	NewestCommentTime      string `json:"newest_comment_time,omitempty"`
	NewestCommentTimeNecro string `json:"newest_comment_time_necro,omitempty"`
	PostID                 int64  `json:"post_id"`
	Published              string `json:"published"`
	Score                  int64  `json:"score"`
	Upvotes                int64  `json:"upvotes"`
}

// CommentAggregates mirrors https://join-lemmy.org/api/interfaces/CommentAggregates.html
type CommentAggregates struct {
	ID         int64  `json:"id"`
	ChildCount int64  `json:"child_count"`
	CommentID  int64  `json:"comment_id"`
	Downvotes  int64  `json:"downvotes"`
	HotRank    int64  `json:"hot_rank"`
	Published  string `json:"published"`
	Score      int64  `json:"score"`
	Upvotes    int64  `json:"upvotes"`
}

// CommunityAggregates mirrors https://join-lemmy.org/api/interfaces/CommunityAggregates.html
type CommunityAggregates struct {
	ID                  int64  `json:"id"`
	Comments            int64  `json:"comments"`
	CommunityID         int64  `json:"community_id"`
	HotRank             int64  `json:"hot_rank"`
	Posts               int64  `json:"posts"`
	Published           string `json:"published"`
	Subscribers         int64  `json:"subscribers"`
	UsersActiveDay      int64  `json:"users_active_day"`
	UsersActiveHalfYear int64  `json:"users_active_half_year"`
	UsersActiveMonth    int64  `json:"users_active_month"`
	UsersActiveWeek     int64  `json:"users_active_week"`
}

// PersonAggregates mirrors https://join-lemmy.org/api/interfaces/PersonAggregates.html
type PersonAggregates struct {
	ID           int64 `json:"id"`
	CommentCount int64 `json:"comment_count"`
	CommentScore int64 `json:"comment_score"`
	PersonID     int64 `json:"person_id"`
	PostCount    int64 `json:"post_count"`
	PostScore    int64 `json:"post_score"`
}

// LemmySite mirrors https://join-lemmy.org/api/interfaces/Site.html
type LemmySite struct {
	ID              int64  `json:"id"`
	ActorID         string `json:"actor_id"`
	Banner          string `json:"banner,omitempty"`
	Description     string `json:"description,omitempty"`
	Icon            string `json:"icon,omitempty"`
	InboxURL        string `json:"inbox_url,omitempty"`
	InstanceID      int64  `json:"instance_id"`
	LastRefreshedAt string `json:"last_refreshed_at,omitempty"`
	Name            string `json:"name"`
	PublicKey       string `json:"public_key,omitempty"`
	Published       string `json:"published"`
	Sidebar         string `json:"sidebar,omitempty"`
	Updated         string `json:"updated,omitempty"`
}

// SiteAggregates mirrors https://join-lemmy.org/api/interfaces/SiteAggregates.html
type SiteAggregates struct {
	ID                  int64 `json:"id"`
	Comments            int64 `json:"comments"`
	Communities         int64 `json:"communities"`
	Posts               int64 `json:"posts"`
	SiteID              int64 `json:"site_id"`
	Users               int64 `json:"users"`
	UsersActiveDay      int64 `json:"users_active_day"`
	UsersActiveHalfYear int64 `json:"users_active_half_year"`
	UsersActiveMonth    int64 `json:"users_active_month"`
	UsersActiveWeek     int64 `json:"users_active_week"`
}

// PostView is the post + creator + community + counts envelope returned by
// post listing endpoints.
type PostView struct {
	Post      LemmyPost      `json:"post"`
	Creator   LemmyPerson    `json:"creator"`
	Community LemmyCommunity `json:"community"`
	Counts    PostAggregates `json:"counts"`
}

// CommentView is the comment envelope returned by comment listing endpoints.
type CommentView struct {
	Comment   LemmyComment      `json:"comment"`
	Creator   LemmyPerson       `json:"creator"`
	Post      LemmyPost         `json:"post"`
	Community LemmyCommunity    `json:"community"`
	Counts    CommentAggregates `json:"counts"`
}

// CommunityView is the community envelope returned by community endpoints.
type CommunityView struct {
	Community  LemmyCommunity      `json:"community"`
	Subscribed string              `json:"subscribed,omitempty"`
	Blocked    bool                `json:"blocked"`
	Counts     CommunityAggregates `json:"counts"`
}

// PersonView is the person envelope returned by user endpoints.
type PersonView struct {
	Person LemmyPerson      `json:"person"`
	Counts PersonAggregates `json:"counts"`
}

// SiteView is the site envelope returned by /site.
type SiteView struct {
	Site   LemmySite      `json:"site"`
	Counts SiteAggregates `json:"counts"`
}

// GetPostsResponse is the /post/list response envelope.
type GetPostsResponse struct {
	Posts []PostView `json:"posts"`
}

// GetPostResponse is the /post response envelope.
type GetPostResponse struct {
	PostView      PostView      `json:"post_view"`
	CommunityView CommunityView `json:"community_view"`
}

// GetCommentsResponse is the /comment/list response envelope.
type GetCommentsResponse struct {
	Comments []CommentView `json:"comments"`
}

// GetPersonDetailsResponse is the /user response envelope.
type GetPersonDetailsResponse struct {
	PersonView PersonView    `json:"person_view"`
	Comments   []CommentView `json:"comments"`
	Posts      []PostView    `json:"posts"`
}

// GetCommunityResponse is the /community response envelope.
type GetCommunityResponse struct {
	CommunityView CommunityView `json:"community_view"`
}

// GetSiteResponse is the /site response envelope.
type GetSiteResponse struct {
	SiteView SiteView `json:"site_view"`
}

// LemmySearchResponse is the /search response envelope.
type LemmySearchResponse struct {
	Type        string          `json:"type_"`
	Comments    []CommentView   `json:"comments"`
	Posts       []PostView      `json:"posts"`
	Communities []CommunityView `json:"communities"`
	Users       []PersonView    `json:"users"`
}

// LoginResponse is the /user/login response envelope.
type LoginResponse struct {
	JWT                 string `json:"jwt"`
	RegistrationCreated bool   `json:"registration_created"`
	VerifyEmailSent     bool   `json:"verify_email_sent"`
}

// CaptchaResponse mirrors https://join-lemmy.org/api/interfaces/CaptchaResponse.html
type CaptchaResponse struct {
	PNG  string `json:"png,omitempty"`
	UUID string `json:"uuid,omitempty"`
	WAV  string `json:"wav,omitempty"`
}
