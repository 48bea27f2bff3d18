package xapi

import (
	"Birdseye/internal/api/config"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIBase   = "https://api.twitter.com/2"
	defaultAuthorize = "https://twitter.com/i/oauth2/authorize"

	// OAuthScopes 申请的权限范围
	OAuthScopes = "tweet.read users.read follows.read follows.write offline.access"

	userFields  = "id,name,username,profile_image_url,description,location,created_at,public_metrics,verified"
	tweetFields = "created_at,public_metrics"

	// 关注列表单页上限 (X API v2 规定)
	pageSize = 1000
)

// Client X API 适配器：OAuth 令牌往返与 follower/following/tweet 拉取
type Client interface {
	AuthorizeURL(state, codeChallenge string) string
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	GetUserProfile(ctx context.Context, accessToken string) (*XUser, error)
	GetFollowers(ctx context.Context, xUserID, accessToken, paginationToken string) (*UserPage, error)
	GetFollowing(ctx context.Context, xUserID, accessToken, paginationToken string) (*UserPage, error)
	GetUserTweets(ctx context.Context, xUserID, accessToken string, maxResults int) (*TweetPage, error)
	UnfollowUser(ctx context.Context, sourceXUserID, targetXUserID, accessToken string) error
}

type clientImpl struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	callbackURL  string
	authorizeURL string
}

func NewClient(cfg config.XAPIConfig) Client {
	return newClient(cfg, defaultAPIBase, defaultAuthorize)
}

func newClient(cfg config.XAPIConfig, apiBase, authorizeURL string) Client {
	httpClient := resty.New().
		SetTimeout(20 * time.Second).
		SetBaseURL(apiBase)

	return &clientImpl{
		http:         httpClient,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		callbackURL:  cfg.CallbackURL,
		authorizeURL: authorizeURL,
	}
}

// AuthorizeURL 构造浏览器跳转的授权地址，state 与 S256 challenge 由调用方生成
func (s *clientImpl) AuthorizeURL(state, codeChallenge string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.callbackURL)
	params.Set("scope", OAuthScopes)
	params.Set("state", state)
	params.Set("code_challenge", codeChallenge)
	params.Set("code_challenge_method", "S256")

	return s.authorizeURL + "?" + params.Encode()
}

// ExchangeCode 授权码 + code_verifier 换取访问令牌
func (s *clientImpl) ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenResponse, error) {
	var token TokenResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetBasicAuth(s.clientID, s.clientSecret).
		SetFormData(map[string]string{
			"code":          code,
			"grant_type":    "authorization_code",
			"client_id":     s.clientID,
			"redirect_uri":  s.callbackURL,
			"code_verifier": codeVerifier,
		}).
		SetResult(&token).
		Post("/oauth2/token")
	if err != nil {
		return nil, fmt.Errorf("token exchange request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("token exchange failed: %s: %s", resp.Status(), resp.String())
	}

	return &token, nil
}

// RefreshToken 用 refresh_token 换取新令牌
func (s *clientImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var token TokenResponse

	resp, err := s.http.R().
		SetContext(ctx).
		SetBasicAuth(s.clientID, s.clientSecret).
		SetFormData(map[string]string{
			"refresh_token": refreshToken,
			"grant_type":    "refresh_token",
			"client_id":     s.clientID,
		}).
		SetResult(&token).
		Post("/oauth2/token")
	if err != nil {
		return nil, fmt.Errorf("token refresh request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("token refresh failed: %s: %s", resp.Status(), resp.String())
	}

	return &token, nil
}

// GetUserProfile 拉取当前授权用户的资料
func (s *clientImpl) GetUserProfile(ctx context.Context, accessToken string) (*XUser, error) {
	var result struct {
		Data XUser `json:"data"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("user.fields", userFields).
		SetResult(&result).
		Get("/users/me")
	if err != nil {
		return nil, fmt.Errorf("get user profile request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get user profile failed: %s", resp.Status())
	}

	return &result.Data, nil
}

// GetFollowers 拉取一页粉丝，paginationToken 为空表示第一页
func (s *clientImpl) GetFollowers(ctx context.Context, xUserID, accessToken, paginationToken string) (*UserPage, error) {
	return s.getRelationPage(ctx, fmt.Sprintf("/users/%s/followers", xUserID), accessToken, paginationToken)
}

// GetFollowing 拉取一页关注对象
func (s *clientImpl) GetFollowing(ctx context.Context, xUserID, accessToken, paginationToken string) (*UserPage, error) {
	return s.getRelationPage(ctx, fmt.Sprintf("/users/%s/following", xUserID), accessToken, paginationToken)
}

func (s *clientImpl) getRelationPage(ctx context.Context, path, accessToken, paginationToken string) (*UserPage, error) {
	var page UserPage

	req := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("user.fields", userFields).
		SetQueryParam("max_results", fmt.Sprint(pageSize)).
		SetResult(&page)
	if paginationToken != "" {
		req.SetQueryParam("pagination_token", paginationToken)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("relation page request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("relation page failed: %s: %s", resp.Status(), resp.String())
	}

	return &page, nil
}

// GetUserTweets 拉取某用户最近的推文
func (s *clientImpl) GetUserTweets(ctx context.Context, xUserID, accessToken string, maxResults int) (*TweetPage, error) {
	var page TweetPage

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("tweet.fields", tweetFields).
		SetQueryParam("max_results", fmt.Sprint(maxResults)).
		SetResult(&page).
		Get(fmt.Sprintf("/users/%s/tweets", xUserID))
	if err != nil {
		return nil, fmt.Errorf("get user tweets request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get user tweets failed: %s", resp.Status())
	}

	return &page, nil
}

// UnfollowUser 取关
func (s *clientImpl) UnfollowUser(ctx context.Context, sourceXUserID, targetXUserID, accessToken string) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Delete(fmt.Sprintf("/users/%s/following/%s", sourceXUserID, targetXUserID))
	if err != nil {
		return fmt.Errorf("unfollow request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("unfollow failed: %s", resp.Status())
	}
	return nil
}
