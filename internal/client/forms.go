package client

// Endpoint form structs for operations with wide optional surfaces. Optional
// fields are pointers: nil means "not supplied" and is never serialized,
// matching the absent-parameter contract of the filtering step.

// Ptr returns a pointer to v, for filling optional form fields inline.
func Ptr[T any](v T) *T { return &v }

// GetPostsForm holds arguments for Client.GetPosts.
type GetPostsForm struct {
	CommunityID   *int64  `json:"community_id,omitempty"`
	CommunityName *string `json:"community_name,omitempty"`
	Limit         *int64  `json:"limit,omitempty"`
	Page          *int64  `json:"page,omitempty"`
	SavedOnly     *bool   `json:"saved_only,omitempty"`
	Sort          *string `json:"sort,omitempty"`
	Type          *string `json:"type_,omitempty"`
}

// GetCommentsForm holds arguments for Client.GetComments.
type GetCommentsForm struct {
	CommunityID   *int64  `json:"community_id,omitempty"`
	CommunityName *string `json:"community_name,omitempty"`
	Limit         *int64  `json:"limit,omitempty"`
	MaxDepth      *int64  `json:"max_depth,omitempty"`
	Page          *int64  `json:"page,omitempty"`
	ParentID      *int64  `json:"parent_id,omitempty"`
	PostID        *int64  `json:"post_id,omitempty"`
	SavedOnly     *bool   `json:"saved_only,omitempty"`
	Sort          *string `json:"sort,omitempty"`
	Type          *string `json:"type_,omitempty"`
}

// GetPersonDetailsForm holds arguments for Client.GetPersonDetails.
type GetPersonDetailsForm struct {
	CommunityID *int64  `json:"community_id,omitempty"`
	Limit       *int64  `json:"limit,omitempty"`
	Page        *int64  `json:"page,omitempty"`
	PersonID    *int64  `json:"person_id,omitempty"`
	SavedOnly   *bool   `json:"saved_only,omitempty"`
	Sort        *string `json:"sort,omitempty"`
	Username    *string `json:"username,omitempty"`
}

// GetModlogForm holds arguments for Client.GetModlog. Type is required.
type GetModlogForm struct {
	Type          string `json:"type_"`
	CommunityID   *int64 `json:"community_id,omitempty"`
	Limit         *int64 `json:"limit,omitempty"`
	ModPersonID   *int64 `json:"mod_person_id,omitempty"`
	OtherPersonID *int64 `json:"other_person_id,omitempty"`
	Page          *int64 `json:"page,omitempty"`
}

// SearchForm holds arguments for Client.Search. Q is required.
type SearchForm struct {
	Q             string  `json:"q"`
	CommunityID   *int64  `json:"community_id,omitempty"`
	CommunityName *string `json:"community_name,omitempty"`
	CreatorID     *int64  `json:"creator_id,omitempty"`
	Limit         *int64  `json:"limit,omitempty"`
	ListingType   *string `json:"listing_type,omitempty"`
	Page          *int64  `json:"page,omitempty"`
	Sort          *string `json:"sort,omitempty"`
	Type          *string `json:"type_,omitempty"`
}

// CreatePostForm holds arguments for Client.CreatePost. The honeypot field
// is forwarded opaque; the remote API does not document its semantics.
type CreatePostForm struct {
	CommunityID int64   `json:"community_id"`
	Name        string  `json:"name"`
	Body        *string `json:"body,omitempty"`
	Honeypot    *string `json:"honeypot,omitempty"`
	LanguageID  *int64  `json:"language_id,omitempty"`
	NSFW        *bool   `json:"nsfw,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// EditPostForm holds arguments for Client.EditPost.
type EditPostForm struct {
	PostID     int64   `json:"post_id"`
	Body       *string `json:"body,omitempty"`
	LanguageID *int64  `json:"language_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	NSFW       *bool   `json:"nsfw,omitempty"`
	URL        *string `json:"url,omitempty"`
}

// CreateCommunityForm holds arguments for Client.CreateCommunity.
type CreateCommunityForm struct {
	Name                    string  `json:"name"`
	Title                   string  `json:"title"`
	Banner                  *string `json:"banner,omitempty"`
	Description             *string `json:"description,omitempty"`
	DiscussionLanguages     []int64 `json:"discussion_languages,omitempty"`
	Icon                    *string `json:"icon,omitempty"`
	NSFW                    *bool   `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool   `json:"posting_restricted_to_mods,omitempty"`
}

// EditCommunityForm holds arguments for Client.EditCommunity.
type EditCommunityForm struct {
	CommunityID             int64   `json:"community_id"`
	Banner                  *string `json:"banner,omitempty"`
	Description             *string `json:"description,omitempty"`
	DiscussionLanguages     []int64 `json:"discussion_languages,omitempty"`
	Icon                    *string `json:"icon,omitempty"`
	NSFW                    *bool   `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool   `json:"posting_restricted_to_mods,omitempty"`
	Title                   *string `json:"title,omitempty"`
}

// SiteForm holds arguments for Client.CreateSite and Client.EditSite.
type SiteForm struct {
	ActorNameMaxLength        *int64   `json:"actor_name_max_length,omitempty"`
	AllowedInstances          []string `json:"allowed_instances,omitempty"`
	ApplicationEmailAdmins    *bool    `json:"application_email_admins,omitempty"`
	ApplicationQuestion       *string  `json:"application_question,omitempty"`
	Banner                    *string  `json:"banner,omitempty"`
	BlockedInstances          []string `json:"blocked_instances,omitempty"`
	CaptchaDifficulty         *string  `json:"captcha_difficulty,omitempty"`
	CaptchaEnabled            *bool    `json:"captcha_enabled,omitempty"`
	CommunityCreationAdminOnly *bool   `json:"community_creation_admin_only,omitempty"`
	DefaultPostListingType    *string  `json:"default_post_listing_type,omitempty"`
	DefaultTheme              *string  `json:"default_theme,omitempty"`
	Description               *string  `json:"description,omitempty"`
	DiscussionLanguages       []int64  `json:"discussion_languages,omitempty"`
	EnableDownvotes           *bool    `json:"enable_downvotes,omitempty"`
	EnableNSFW                *bool    `json:"enable_nsfw,omitempty"`
	FederationDebug           *bool    `json:"federation_debug,omitempty"`
	FederationEnabled         *bool    `json:"federation_enabled,omitempty"`
	FederationWorkerCount     *int64   `json:"federation_worker_count,omitempty"`
	HideModlogModNames        *bool    `json:"hide_modlog_mod_names,omitempty"`
	Icon                      *string  `json:"icon,omitempty"`
	LegalInformation          *string  `json:"legal_information,omitempty"`
	Name                      *string  `json:"name,omitempty"`
	PrivateInstance           *bool    `json:"private_instance,omitempty"`
	RateLimitComment          *int64   `json:"rate_limit_comment,omitempty"`
	RateLimitCommentPerSecond *int64   `json:"rate_limit_comment_per_second,omitempty"`
	RateLimitImage            *int64   `json:"rate_limit_image,omitempty"`
	RateLimitImagePerSecond   *int64   `json:"rate_limit_image_per_second,omitempty"`
	RateLimitMessage          *int64   `json:"rate_limit_message,omitempty"`
	RateLimitMessagePerSecond *int64   `json:"rate_limit_message_per_second,omitempty"`
	RateLimitPost             *int64   `json:"rate_limit_post,omitempty"`
	RateLimitPostPerSecond    *int64   `json:"rate_limit_post_per_second,omitempty"`
	RateLimitRegister         *int64   `json:"rate_limit_register,omitempty"`
	RateLimitRegisterPerSecond *int64  `json:"rate_limit_register_per_second,omitempty"`
	RateLimitSearch           *int64   `json:"rate_limit_search,omitempty"`
	RateLimitSearchPerSecond  *int64   `json:"rate_limit_search_per_second,omitempty"`
	RegistrationMode          *string  `json:"registration_mode,omitempty"`
	ReportsEmailAdmins        *bool    `json:"reports_email_admins,omitempty"`
	RequireEmailVerification  *bool    `json:"require_email_verification,omitempty"`
	Sidebar                   *string  `json:"sidebar,omitempty"`
	SlurFilterRegex           *string  `json:"slur_filter_regex,omitempty"`
	Taglines                  []string `json:"taglines,omitempty"`
}

// UserSettingsForm holds arguments for Client.SaveUserSettings.
type UserSettingsForm struct {
	Avatar                   *string `json:"avatar,omitempty"`
	Banner                   *string `json:"banner,omitempty"`
	Bio                      *string `json:"bio,omitempty"`
	BotAccount               *bool   `json:"bot_account,omitempty"`
	DefaultListingType       *string `json:"default_listing_type,omitempty"`
	DefaultSortType          *string `json:"default_sort_type,omitempty"`
	DiscussionLanguages      []int64 `json:"discussion_languages,omitempty"`
	DisplayName              *string `json:"display_name,omitempty"`
	Email                    *string `json:"email,omitempty"`
	InterfaceLanguage        *string `json:"interface_language,omitempty"`
	MatrixUserID             *string `json:"matrix_user_id,omitempty"`
	SendNotificationsToEmail *bool   `json:"send_notifications_to_email,omitempty"`
	ShowAvatars              *bool   `json:"show_avatars,omitempty"`
	ShowBotAccounts          *bool   `json:"show_bot_accounts,omitempty"`
	ShowNewPostNotifs        *bool   `json:"show_new_post_notifs,omitempty"`
	ShowNSFW                 *bool   `json:"show_nsfw,omitempty"`
	ShowReadPosts            *bool   `json:"show_read_posts,omitempty"`
	ShowScores               *bool   `json:"show_scores,omitempty"`
	Theme                    *string `json:"theme,omitempty"`
}

// RegisterForm holds arguments for Client.Register. The honeypot field is
// forwarded opaque; the remote API does not document its semantics.
type RegisterForm struct {
	Password       string  `json:"password"`
	PasswordVerify string  `json:"password_verify"`
	ShowNSFW       bool    `json:"show_nsfw"`
	Username       string  `json:"username"`
	Answer         *string `json:"answer,omitempty"`
	CaptchaAnswer  *string `json:"captcha_answer,omitempty"`
	CaptchaUUID    *string `json:"captcha_uuid,omitempty"`
	Email          *string `json:"email,omitempty"`
	Honeypot       *string `json:"honeypot,omitempty"`
}
