package service

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/model"
)

// AdminListLimit caps the admin submissions view.
const AdminListLimit = 200

// AttemptService derives a candidate's attempt state from storage on
// every call. There is no server-side session state: the submissions
// and final_submissions rows are the whole truth, so a restart loses
// nothing.
type AttemptService struct {
	DB *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{DB: db}
}

// PartStatus is one part's view inside a Progress.
type PartStatus struct {
	Part      Part
	Submitted bool   // at least one row exists, even with empty content
	Answered  bool   // latest row has non-blank content
	Content   string // latest content, prefilled into the form
}

// Progress is the recomputed state of one candidate's attempt.
type Progress struct {
	CandidateName   string
	Parts           []PartStatus
	Current         Part // next part to work on; empty once all parts have a row
	ReadyToFinalize bool
	Finalized       bool
	AllDone         bool // finalize gate (required parts answered)
	Missing         []Part
}

// CanFinalize reports whether a POST /finalize would succeed right now.
func (p *Progress) CanFinalize() bool {
	return p.AllDone && !p.Finalized
}

func (s *AttemptService) IsFinalized(candidateName string) (bool, error) {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return false, ErrNoIdentity
	}
	var count int64
	err := s.DB.Model(&model.FinalSubmission{}).
		Where("candidate_name = ?", candidateName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Latest returns the authoritative row for (candidate, part): greatest
// created_at, and the later-inserted row when timestamps collide.
// Returns nil when the part was never submitted.
func (s *AttemptService) Latest(candidateName string, part Part) (*model.Submission, error) {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return nil, ErrNoIdentity
	}
	var sub model.Submission
	err := s.DB.
		Where("candidate_name = ? AND part = ?", candidateName, string(part)).
		Order("created_at DESC, id DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Progress recomputes the whole attempt view in one pass.
func (s *AttemptService) Progress(candidateName string) (*Progress, error) {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return nil, ErrNoIdentity
	}

	finalized, err := s.IsFinalized(candidateName)
	if err != nil {
		return nil, err
	}

	// 1. Load every row for the candidate oldest-first; overwriting the
	//    map per part leaves exactly the latest-wins row behind.
	var rows []model.Submission
	err = s.DB.
		Where("candidate_name = ?", candidateName).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	latest := make(map[Part]model.Submission, len(PartOrder))
	for _, row := range rows {
		latest[Part(row.Part)] = row
	}

	// 2. Per-part flags + progression pointer (first part with no row).
	prog := &Progress{
		CandidateName: candidateName,
		Finalized:     finalized,
		AllDone:       true,
	}
	for _, part := range PartOrder {
		row, submitted := latest[part]
		status := PartStatus{
			Part:      part,
			Submitted: submitted,
			Answered:  submitted && strings.TrimSpace(row.Content) != "",
			Content:   row.Content,
		}
		prog.Parts = append(prog.Parts, status)
		if !submitted && prog.Current == "" {
			prog.Current = part
		}
		if part.IsRequired() && !status.Answered {
			prog.AllDone = false
			prog.Missing = append(prog.Missing, part)
		}
	}
	prog.ReadyToFinalize = prog.Current == "" && !finalized

	return prog, nil
}

// Submit appends one answer row. Empty content is accepted here:
// submitted-but-blank is a valid, if incomplete, state that only the
// finalize gate complains about.
func (s *AttemptService) Submit(candidateName string, part Part, content string) (next Part, toFinalize bool, err error) {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return "", false, ErrNoIdentity
	}
	if _, ok := ParseParam(string(part)); !ok {
		return "", false, ErrUnknownPart
	}

	// 1. A finalized attempt is a hard stop, not a retry.
	finalized, err := s.IsFinalized(candidateName)
	if err != nil {
		return "", false, err
	}
	if finalized {
		return "", false, ErrAttemptLocked
	}

	// 2. Append; never update an earlier row.
	sub := model.Submission{
		CandidateName: candidateName,
		Part:          string(part),
		Content:       content,
	}
	if err := s.DB.Create(&sub).Error; err != nil {
		log.Println("[ERROR] failed to insert submission:", err)
		return "", false, err
	}

	next, done := part.Next()
	return next, done, nil
}

// Finalize closes the attempt. Idempotent: an already-finalized attempt
// succeeds without touching storage, and two racing calls resolve via
// the unique index on candidate_name (the loser's insert no-ops).
func (s *AttemptService) Finalize(candidateName string) error {
	candidateName = strings.TrimSpace(candidateName)
	if candidateName == "" {
		return ErrNoIdentity
	}

	prog, err := s.Progress(candidateName)
	if err != nil {
		return err
	}
	if prog.Finalized {
		return nil
	}
	if !prog.AllDone {
		return &IncompletePartsError{Missing: prog.Missing}
	}

	rec := model.FinalSubmission{CandidateName: candidateName}
	err = s.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "candidate_name"}},
			DoNothing: true,
		}).
		Create(&rec).Error
	if err != nil {
		log.Println("[ERROR] failed to insert final_submission:", err)
		return err
	}
	log.Printf("[INFO] attempt finalized: %s", candidateName)
	return nil
}

// ListLatest is the admin view: newest first by created_at, row id
// ascending inside an equal timestamp (second-resolution timestamps
// collide, so the tiebreak has to be explicit).
func (s *AttemptService) ListLatest(limit int) ([]model.Submission, error) {
	if limit <= 0 || limit > AdminListLimit {
		limit = AdminListLimit
	}
	var rows []model.Submission
	err := s.DB.
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
