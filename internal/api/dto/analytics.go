package dto

import "time"

// EngagementRowDTO 单个粉丝的互动评分
type EngagementRowDTO struct {
	FollowerXUserID  string    `json:"followerXUserId"`
	EngagementScore  int       `json:"engagementScore"`
	EngagementTier   string    `json:"engagementTier"`
	LikesReceived    int       `json:"likesReceived"`
	RetweetsReceived int       `json:"retweetsReceived"`
	RepliesReceived  int       `json:"repliesReceived"`
	MentionsCount    int       `json:"mentionsCount"`
	CalculatedAt     time.Time `json:"calculatedAt"`
}

// EngagementSummaryDTO 互动分层汇总
type EngagementSummaryDTO struct {
	Total     int                 `json:"total"`
	TierCount map[string]int      `json:"tierCounts"`
	Rows      []*EngagementRowDTO `json:"rows"`
}

// GrowthDayDTO 单日增长
type GrowthDayDTO struct {
	Date              time.Time `json:"date"`
	FollowersCount    int       `json:"followersCount"`
	FollowingCount    int       `json:"followingCount"`
	FollowersGained   int       `json:"followersGained"`
	FollowersLost     int       `json:"followersLost"`
	NetFollowerChange int       `json:"netFollowerChange"`
}

// GrowthSummaryDTO 区间增长汇总
type GrowthSummaryDTO struct {
	Days        int             `json:"days"`
	TotalGained int             `json:"totalGained"`
	TotalLost   int             `json:"totalLost"`
	NetChange   int             `json:"netChange"`
	Daily       []*GrowthDayDTO `json:"daily"`
}

// LocationCountDTO 地区计数
type LocationCountDTO struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// DemographicsDTO 粉丝画像
type DemographicsDTO struct {
	Total        int                 `json:"total"`
	Verified     int                 `json:"verified"`
	Unverified   int                 `json:"unverified"`
	TopLocations []*LocationCountDTO `json:"topLocations"`
}

// InactiveFollowerDTO 单个粉丝的活跃度评估
type InactiveFollowerDTO struct {
	FollowerXUserID    string     `json:"followerXUserId"`
	ActivityStatus     string     `json:"activityStatus"`
	DaysSinceLastTweet *int       `json:"daysSinceLastTweet,omitempty"`
	LastTweetDate      *time.Time `json:"lastTweetDate,omitempty"`
	TweetCount30Days   int        `json:"tweetCount30Days"`
	TweetCount90Days   int        `json:"tweetCount90Days"`
	CalculatedAt       time.Time  `json:"calculatedAt"`
}

// InactiveFollowersDTO 活跃度列表
type InactiveFollowersDTO struct {
	Total int                    `json:"total"`
	Rows  []*InactiveFollowerDTO `json:"rows"`
}
