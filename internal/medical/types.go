package medical

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File is one uploaded medical record. FileName keeps the name the
// user uploaded; URL points at the stored copy under /uploads/.
type File struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	FileName  string             `bson:"file_name" json:"fileName"`
	URL       string             `bson:"url" json:"url"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
