// Package updater implements the background task that periodically polls
// the upstream repository for new expansion phrases and folds them into
// the expansions model, recording every attempt in the history model.
package updater

import (
	"time"

	"github.com/yourusername/npm-expansions/internal/applog"
	"github.com/yourusername/npm-expansions/internal/expansions"
	"github.com/yourusername/npm-expansions/internal/history"
	"github.com/yourusername/npm-expansions/internal/upstream"
)

// syntheticPRID is recorded when an iteration finds no unused open pull
// request to harvest from.
const syntheticPRID = "none"

// Updater runs the sleep-harvest-record loop against a shared expansions
// and history model.
type Updater struct {
	expansions *expansions.Store
	history    *history.Store
	harvester  *upstream.Harvester
	interval   time.Duration
	log        *applog.Logger

	now func() time.Time
}

// New constructs an Updater. interval is the minimum spacing enforced
// between attempts, measured from the latest history entry whatever its
// outcome.
func New(exp *expansions.Store, hist *history.Store, harvester *upstream.Harvester, interval time.Duration, log *applog.Logger) *Updater {
	return &Updater{
		expansions: exp,
		history:    hist,
		harvester:  harvester,
		interval:   interval,
		log:        log,
		now:        time.Now,
	}
}

// Run loops forever, sleeping between iterations per sleepDuration. It
// never returns except when stop is closed, and never panics out: every
// failure is recorded as a history "failure" entry and logged.
func (u *Updater) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		d := u.sleepDuration()
		select {
		case <-time.After(d):
		case <-stop:
			return
		}

		u.tick()
	}
}

// sleepDuration computes max(0, interval - (now - last.timestamp)), or 0 if
// the history model has no prior entry.
func (u *Updater) sleepDuration() time.Duration {
	last, ok := u.history.Latest()
	if !ok {
		return 0
	}

	elapsed := u.now().Sub(last.Timestamp)
	remaining := u.interval - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// tick runs one iteration: find an unused open pull request, harvest its
// expansions, append them, and record the outcome.
func (u *Updater) tick() {
	start := u.now()
	used := u.history.PRIDs()

	prID, found, err := u.harvester.UnusedOpenPR(used)
	if err != nil {
		u.recordFailure(syntheticPRID, start, err)
		return
	}
	if !found {
		u.recordFailure(syntheticPRID, start, nil)
		return
	}

	lines, ok, err := u.harvester.ExpansionsOf(prID)
	if err != nil {
		u.recordFailure(prID, start, err)
		return
	}
	if !ok || len(lines) == 0 {
		u.recordFailure(prID, start, nil)
		return
	}

	if _, err := u.expansions.Append(lines); err != nil {
		u.recordFailure(prID, start, err)
		return
	}

	if err := u.history.Append(u.now(), prID, history.Success); err != nil {
		u.log.UpdaterTick(prID, "success", u.now().Sub(start), err)
		return
	}
	u.log.UpdaterTick(prID, "success", u.now().Sub(start), nil)
}

func (u *Updater) recordFailure(prID string, start time.Time, cause error) {
	if err := u.history.Append(u.now(), prID, history.Failure); err != nil {
		u.log.UpdaterTick(prID, "failure", u.now().Sub(start), err)
		return
	}
	u.log.UpdaterTick(prID, "failure", u.now().Sub(start), cause)
}
