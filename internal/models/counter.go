package models

// Counter is a named atomic sequence, incremented with $inc upserts.
type Counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
