package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	database "github.com/Maru1209/EulerQ-candidate-test/internals/databases"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/model"
	"github.com/Maru1209/EulerQ-candidate-test/internals/features/assessment/service"
)

func newTestService(t *testing.T) *service.AttemptService {
	t.Helper()
	cfg := &configs.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	database.TunePool(db)
	t.Cleanup(func() { database.Close(db) })
	return service.NewAttemptService(db)
}

func TestNextPartChain(t *testing.T) {
	// the successor map is total over A–E
	for i, p := range service.PartOrder {
		next, done := p.Next()
		if i == len(service.PartOrder)-1 {
			assert.True(t, done, "last part must route to finalize")
		} else {
			assert.False(t, done)
			assert.Equal(t, service.PartOrder[i+1], next)
		}
	}

	// composing from A five times reaches the finalize sentinel
	p := service.PartA
	for i := 0; i < len(service.PartOrder)-1; i++ {
		next, done := p.Next()
		require.False(t, done)
		p = next
	}
	_, done := p.Next()
	assert.True(t, done)
}

func TestParseParam(t *testing.T) {
	for _, p := range service.PartOrder {
		got, ok := service.ParseParam(p.Param())
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := service.ParseParam("f")
	assert.False(t, ok)
	_, ok = service.ParseParam("")
	assert.False(t, ok)
}

func TestRequiredPartsExcludeE(t *testing.T) {
	assert.Equal(t, []service.Part{service.PartA, service.PartB, service.PartC, service.PartD},
		service.RequiredParts)
	assert.False(t, service.PartE.IsRequired())
}

func TestSubmitStoresRowsAndLatestWins(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Submit("alice", service.PartA, "first")
	require.NoError(t, err)
	_, _, err = svc.Submit("alice", service.PartA, "second")
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.DB.Model(&model.Submission{}).
		Where("candidate_name = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 2, count, "resubmission must append, not update")

	latest, err := svc.Latest("alice", service.PartA)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Content)
}

func TestLatestWinsTiebreakOnEqualTimestamps(t *testing.T) {
	svc := newTestService(t)

	// second-resolution timestamps collide; the later-inserted row wins
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	first := model.Submission{CandidateName: "bob", Part: "A", Content: "old", CreatedAt: ts}
	second := model.Submission{CandidateName: "bob", Part: "A", Content: "new", CreatedAt: ts}
	require.NoError(t, svc.DB.Create(&first).Error)
	require.NoError(t, svc.DB.Create(&second).Error)

	latest, err := svc.Latest("bob", service.PartA)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, "new", latest.Content)
}

func TestEmptySubmissionAdvancesButDoesNotAnswer(t *testing.T) {
	svc := newTestService(t)

	next, done, err := svc.Submit("carol", service.PartA, "")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, service.PartB, next)

	prog, err := svc.Progress("carol")
	require.NoError(t, err)
	assert.True(t, prog.Parts[0].Submitted)
	assert.False(t, prog.Parts[0].Answered)
	assert.Contains(t, prog.Missing, service.PartA)
	assert.Equal(t, service.PartB, prog.Current)
}

func TestFinalizeGateAndIdempotence(t *testing.T) {
	svc := newTestService(t)

	for _, p := range service.RequiredParts {
		_, _, err := svc.Submit("alice", p, "answer for "+string(p))
		require.NoError(t, err)
	}

	// part E untouched; the gate must still open
	prog, err := svc.Progress("alice")
	require.NoError(t, err)
	assert.True(t, prog.AllDone)
	assert.True(t, prog.CanFinalize())

	require.NoError(t, svc.Finalize("alice"))
	require.NoError(t, svc.Finalize("alice"), "finalize must be idempotent")

	var count int64
	require.NoError(t, svc.DB.Model(&model.FinalSubmission{}).
		Where("candidate_name = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one finalization record")

	finalized, err := svc.IsFinalized("alice")
	require.NoError(t, err)
	assert.True(t, finalized)
}

func TestFinalizeIncompleteNamesMissingParts(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Submit("bob", service.PartA, "x")
	require.NoError(t, err)
	_, _, err = svc.Submit("bob", service.PartC, "z")
	require.NoError(t, err)

	prog, err := svc.Progress("bob")
	require.NoError(t, err)
	assert.False(t, prog.AllDone)
	assert.True(t, prog.Parts[0].Answered)
	assert.False(t, prog.Parts[1].Answered)
	assert.True(t, prog.Parts[2].Answered)
	assert.False(t, prog.Parts[3].Answered)

	err = svc.Finalize("bob")
	var incomplete *service.IncompletePartsError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []service.Part{service.PartB, service.PartD}, incomplete.Missing)

	var count int64
	require.NoError(t, svc.DB.Model(&model.FinalSubmission{}).Count(&count).Error)
	assert.Zero(t, count, "failed finalize must not create a record")
}

func TestSubmitAfterFinalizeIsLocked(t *testing.T) {
	svc := newTestService(t)

	for _, p := range service.RequiredParts {
		_, _, err := svc.Submit("dave", p, "x")
		require.NoError(t, err)
	}
	require.NoError(t, svc.Finalize("dave"))

	var before int64
	require.NoError(t, svc.DB.Model(&model.Submission{}).Count(&before).Error)

	_, _, err := svc.Submit("dave", service.PartA, "too late")
	require.ErrorIs(t, err, service.ErrAttemptLocked)

	var after int64
	require.NoError(t, svc.DB.Model(&model.Submission{}).Count(&after).Error)
	assert.Equal(t, before, after, "locked attempt must not gain rows")
}

func TestBlankIdentityRejected(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Submit("   ", service.PartA, "x")
	assert.ErrorIs(t, err, service.ErrNoIdentity)

	_, _, err = svc.Submit("alice", service.Part("F"), "x")
	assert.ErrorIs(t, err, service.ErrUnknownPart)

	_, err = svc.Progress("")
	assert.ErrorIs(t, err, service.ErrNoIdentity)

	assert.ErrorIs(t, svc.Finalize(""), service.ErrNoIdentity)
}

func TestDuplicateNamesShareOneAttempt(t *testing.T) {
	svc := newTestService(t)

	// two "devices" with the same self-asserted name are one attempt
	_, _, err := svc.Submit("eve", service.PartA, "device one")
	require.NoError(t, err)
	_, _, err = svc.Submit("eve", service.PartA, "device two")
	require.NoError(t, err)

	latest, err := svc.Latest("eve", service.PartA)
	require.NoError(t, err)
	assert.Equal(t, "device two", latest.Content)
}

func TestListLatestCapAndOrder(t *testing.T) {
	svc := newTestService(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	total := service.AdminListLimit + 5
	for i := 0; i < total; i++ {
		row := model.Submission{
			CandidateName: "cand",
			Part:          "A",
			Content:       "row",
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, svc.DB.Create(&row).Error)
	}

	rows, err := svc.ListLatest(0)
	require.NoError(t, err)
	require.Len(t, rows, service.AdminListLimit)

	// newest first
	assert.Equal(t, base.Add(time.Duration(total-1)*time.Second).Unix(), rows[0].CreatedAt.Unix())
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt),
			"rows must be ordered created_at DESC")
	}
}

func TestListLatestTiebreakIDAscending(t *testing.T) {
	svc := newTestService(t)

	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		row := model.Submission{CandidateName: "cand", Part: "A", CreatedAt: ts}
		require.NoError(t, svc.DB.Create(&row).Error)
		ids = append(ids, row.ID)
	}

	rows, err := svc.ListLatest(10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, ids[i], row.ID, "equal timestamps keep insertion order")
	}
}
