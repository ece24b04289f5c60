package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPruner_SweepsAtStartAndOnInterval(t *testing.T) {
	repo := &fakeVisitRepo{}
	svc := newTestAnalytics(t, repo, 24*time.Hour)

	p := NewPruner(svc, 10*time.Millisecond, discardLogger())
	p.Start()
	p.Start()

	assert.Eventually(t, func() bool { return repo.calls() >= 2 },
		time.Second, 5*time.Millisecond)

	p.Stop()
	after := repo.calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, repo.calls(), "no sweeps after Stop")
}

func TestPruner_KeepsRunningAfterErrors(t *testing.T) {
	repo := &fakeVisitRepo{err: errors.New("disk full")}
	svc := newTestAnalytics(t, repo, 24*time.Hour)

	p := NewPruner(svc, 5*time.Millisecond, discardLogger())
	p.Start()
	defer p.Stop()

	assert.Eventually(t, func() bool { return repo.calls() >= 3 },
		time.Second, 5*time.Millisecond)
}

func TestPruner_StopIsIdempotent(t *testing.T) {
	svc := newTestAnalytics(t, &fakeVisitRepo{}, 0)
	p := NewPruner(svc, 0, discardLogger())

	assert.Equal(t, DefaultPruneInterval, p.interval)

	p.Stop()
	p.Stop()
}
