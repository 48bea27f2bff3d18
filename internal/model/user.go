package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 应用账号
// X 身份字段是可选的：通过 X OAuth 首次登录时自动建号并填充
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	Username        string             `bson:"username" json:"username"`
	Role            string             `bson:"role" json:"role"`
	XUserID         *string            `bson:"x_user_id,omitempty" json:"xUserId,omitempty"`
	DisplayName     string             `bson:"display_name,omitempty" json:"displayName,omitempty"`
	ProfileImageURL string             `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
