package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WhitelistedAccount 取关保护名单，每 (账号, 外部用户) 一行
type WhitelistedAccount struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	XAccountID  primitive.ObjectID `bson:"x_account_id" json:"xAccountId"`
	XUserID     string             `bson:"x_user_id" json:"xUserId"`
	Username    string             `bson:"username" json:"username"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Reason      string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
