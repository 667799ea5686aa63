package repositories_test

import (
	"context"
	"encoding/json"
	"testing"

	"careercode_backend/internal/models"
	"careercode_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(t *testing.T, doc string) *models.Job {
	t.Helper()
	var job models.Job
	require.NoError(t, json.Unmarshal([]byte(doc), &job))
	return &job
}

func newApplication(t *testing.T, doc string) *models.Application {
	t.Helper()
	var app models.Application
	require.NoError(t, json.Unmarshal([]byte(doc), &app))
	return &app
}

// runRepositoryContract проверяет поведение, общее для обоих хранилищ.
// repos должны быть пустыми.
func runRepositoryContract(t *testing.T, repos *repositories.Repositories) {
	ctx := context.Background()

	acme := newJob(t, `{"hr_email":"a@x.com","company":"Acme","title":"Eng","level":"senior"}`)
	globex := newJob(t, `{"hr_email":"c@z.com","company":"Globex","title":"Ops"}`)
	require.NoError(t, repos.Jobs.Create(ctx, acme))
	require.NoError(t, repos.Jobs.Create(ctx, globex))
	require.True(t, models.IsValidID(acme.ID))
	require.NotEqual(t, acme.ID, globex.ID)

	t.Run("list all jobs", func(t *testing.T) {
		jobs, err := repos.Jobs.List(ctx, repositories.JobFilter{})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, acme.ID, jobs[0].ID)
		assert.Equal(t, globex.ID, jobs[1].ID)
	})

	t.Run("filter jobs by employer", func(t *testing.T) {
		jobs, err := repos.Jobs.List(ctx, repositories.JobFilter{EmployerEmail: "a@x.com"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, acme.ID, jobs[0].ID)

		jobs, err = repos.Jobs.List(ctx, repositories.JobFilter{EmployerEmail: "nobody@x.com"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("employer email comparison is case-sensitive", func(t *testing.T) {
		jobs, err := repos.Jobs.List(ctx, repositories.JobFilter{EmployerEmail: "A@X.com"})
		require.NoError(t, err)
		assert.Empty(t, jobs)

		jobs, err = repos.Jobs.ListByEmployer(ctx, "A@X.COM")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("list by employer", func(t *testing.T) {
		ownerless := newJob(t, `{"company":"Initech","title":"Temp"}`)
		require.NoError(t, repos.Jobs.Create(ctx, ownerless))

		jobs, err := repos.Jobs.ListByEmployer(ctx, "a@x.com")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, acme.ID, jobs[0].ID)

		jobs, err = repos.Jobs.ListByEmployer(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("find job keeps submitted fields", func(t *testing.T) {
		job, err := repos.Jobs.FindByID(ctx, acme.ID)
		require.NoError(t, err)
		require.NotNil(t, job)
		require.NotNil(t, job.Company)
		assert.Equal(t, "Acme", *job.Company)
		assert.Equal(t, "senior", job.Fields["level"])
	})

	t.Run("find missing job returns nil", func(t *testing.T) {
		job, err := repos.Jobs.FindByID(ctx, "00000000-0000-4000-8000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, job)
	})

	t.Run("find malformed id", func(t *testing.T) {
		_, err := repos.Jobs.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, repositories.ErrInvalidID)
	})

	first := newApplication(t, `{"jobId":"`+acme.ID+`","applicant":"b@y.com","status":"pending"}`)
	second := newApplication(t, `{"jobId":"`+acme.ID+`","applicant":"d@y.com","status":"pending"}`)
	other := newApplication(t, `{"jobId":"`+globex.ID+`","applicant":"b@y.com"}`)
	for _, app := range []*models.Application{first, second, other} {
		require.NoError(t, repos.Applications.Create(ctx, app))
	}

	t.Run("list by applicant", func(t *testing.T) {
		apps, err := repos.Applications.ListByApplicant(ctx, "b@y.com")
		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.Equal(t, first.ID, apps[0].ID)
		assert.Equal(t, other.ID, apps[1].ID)
	})

	t.Run("applicant comparison is case-sensitive", func(t *testing.T) {
		apps, err := repos.Applications.ListByApplicant(ctx, "B@y.com")
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("list and count by job", func(t *testing.T) {
		apps, err := repos.Applications.ListByJob(ctx, acme.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 2)

		count, err := repos.Applications.CountByJob(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repos.Applications.CountByJob(ctx, "no-such-job")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("update status", func(t *testing.T) {
		matched, modified, err := repos.Applications.UpdateStatus(ctx, first.ID, "selected")
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)

		matched, modified, err = repos.Applications.UpdateStatus(ctx, first.ID, "selected")
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Zero(t, modified)

		apps, err := repos.Applications.ListByApplicant(ctx, "b@y.com")
		require.NoError(t, err)
		require.NotEmpty(t, apps)
		require.NotNil(t, apps[0].Status)
		assert.Equal(t, "selected", *apps[0].Status)
		assert.Equal(t, acme.ID, *apps[0].JobID)
	})

	t.Run("update status that differs only in case", func(t *testing.T) {
		matched, modified, err := repos.Applications.UpdateStatus(ctx, first.ID, "Selected")
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)

		apps, err := repos.Applications.ListByApplicant(ctx, "b@y.com")
		require.NoError(t, err)
		require.NotEmpty(t, apps)
		require.NotNil(t, apps[0].Status)
		assert.Equal(t, "Selected", *apps[0].Status)
	})

	t.Run("update status sets a missing status", func(t *testing.T) {
		matched, modified, err := repos.Applications.UpdateStatus(ctx, other.ID, "rejected")
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)
	})

	t.Run("update status of missing application", func(t *testing.T) {
		matched, modified, err := repos.Applications.UpdateStatus(ctx, "00000000-0000-4000-8000-000000000000", "selected")
		require.NoError(t, err)
		assert.Zero(t, matched)
		assert.Zero(t, modified)
	})

	t.Run("update status with malformed id", func(t *testing.T) {
		_, _, err := repos.Applications.UpdateStatus(ctx, "not-an-id", "selected")
		assert.ErrorIs(t, err, repositories.ErrInvalidID)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repos.Ping(ctx))
	})
}
