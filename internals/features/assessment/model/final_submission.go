package model

import "time"

// FinalSubmission marks an attempt as closed. The unique index on
// candidate_name is what makes finalize race-safe: a second concurrent
// insert hits the index and no-ops instead of producing a duplicate.
type FinalSubmission struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CandidateName string    `gorm:"column:candidate_name;not null;uniqueIndex" json:"candidate_name"`
	FinalizedAt   time.Time `gorm:"column:finalized_at;autoCreateTime" json:"finalized_at"`
}

func (FinalSubmission) TableName() string {
	return "final_submissions"
}
