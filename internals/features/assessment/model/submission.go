package model

import "time"

// Submission is one recorded answer. Rows are append-only: a candidate
// re-submitting a part adds a new row, and the newest row wins on read.
type Submission struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CandidateName string    `gorm:"column:candidate_name;not null;index" json:"candidate_name"`
	Part          string    `gorm:"column:part;not null" json:"part"`
	Content       string    `gorm:"column:content" json:"content"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
