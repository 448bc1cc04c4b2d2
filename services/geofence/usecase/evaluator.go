package usecase

import (
	"math"
	"time"

	"github.com/hoopspot/hoopspot/internal/pkg/models"
	"github.com/hoopspot/hoopspot/internal/utils"
)

// distanceTieEpsilon is the tolerance within which two courts are
// considered equidistant; the tie is broken by lowest court ID so that
// evaluation stays deterministic.
const distanceTieEpsilon = 1e-6

// Evaluate decides whether a location sample requires a check-in state
// transition. It is pure: all I/O (catalog fetch, gateway calls, state
// persistence) happens in the caller based on the returned result.
//
// An empty catalog yields no transition with the prior state untouched,
// even when the prior state records the device inside a court: a failed or
// empty catalog fetch is indistinguishable from genuinely having no courts,
// and a false check-out is worse than a delayed one.
//
// NextState must only be persisted once the transition's network effects
// have succeeded.
func Evaluate(sample models.LocationSample, courts []models.Court, prior models.GeofenceState, now time.Time) models.EvaluationResult {
	if len(courts) == 0 {
		return models.EvaluationResult{
			Transition: models.Transition{Kind: models.TransitionNone},
			NextState:  prior,
		}
	}

	nearest := courts[0]
	nearestDist := utils.DistanceMeters(sample.Coordinate, nearest.Coordinate())
	for _, court := range courts[1:] {
		d := utils.DistanceMeters(sample.Coordinate, court.Coordinate())
		switch {
		case d < nearestDist-distanceTieEpsilon:
			nearest = court
			nearestDist = d
		case math.Abs(d-nearestDist) <= distanceTieEpsilon && court.ID < nearest.ID:
			nearest = court
		}
	}

	// Strict less-than: sitting exactly on the radius is outside.
	withinRadius := nearestDist < models.GeofenceRadiusMeters

	next := models.GeofenceState{LastCheckTime: now}

	switch {
	case withinRadius && nearest.ID == prior.CurrentCourtID:
		// Already checked in here; the common case, no network calls.
		next.CurrentCourtID = prior.CurrentCourtID
		return models.EvaluationResult{
			Transition: models.Transition{Kind: models.TransitionNone},
			NextState:  next,
		}

	case withinRadius && prior.Inside():
		next.CurrentCourtID = nearest.ID
		return models.EvaluationResult{
			Transition: models.Transition{
				Kind:         models.TransitionSwitch,
				ExitCourtID:  prior.CurrentCourtID,
				EnterCourtID: nearest.ID,
			},
			NextState: next,
		}

	case withinRadius:
		next.CurrentCourtID = nearest.ID
		return models.EvaluationResult{
			Transition: models.Transition{
				Kind:         models.TransitionEnter,
				EnterCourtID: nearest.ID,
			},
			NextState: next,
		}

	case prior.Inside():
		return models.EvaluationResult{
			Transition: models.Transition{
				Kind:        models.TransitionExit,
				ExitCourtID: prior.CurrentCourtID,
			},
			NextState: next,
		}

	default:
		return models.EvaluationResult{
			Transition: models.Transition{Kind: models.TransitionNone},
			NextState:  next,
		}
	}
}
