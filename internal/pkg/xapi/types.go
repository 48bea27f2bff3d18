package xapi

import "time"

// PublicMetrics X 用户公开计数
type PublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
}

// XUser X API v2 的用户对象 (user.fields 展开后)
type XUser struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Username        string        `json:"username"`
	ProfileImageURL string        `json:"profile_image_url"`
	Description     string        `json:"description"`
	Location        string        `json:"location"`
	CreatedAt       *time.Time    `json:"created_at"`
	PublicMetrics   PublicMetrics `json:"public_metrics"`
	Verified        bool          `json:"verified"`
}

// TweetMetrics 推文公开计数
type TweetMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	QuoteCount   int `json:"quote_count"`
}

// Tweet 推文对象 (tweet.fields 展开后)
type Tweet struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	CreatedAt     time.Time    `json:"created_at"`
	PublicMetrics TweetMetrics `json:"public_metrics"`
}

// PageMeta 翻页游标，NextToken 为空表示最后一页
type PageMeta struct {
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}

type UserPage struct {
	Data []XUser  `json:"data"`
	Meta PageMeta `json:"meta"`
}

type TweetPage struct {
	Data []Tweet  `json:"data"`
	Meta PageMeta `json:"meta"`
}

// TokenResponse OAuth2 令牌交换/刷新的响应体
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}
