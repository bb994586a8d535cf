package activities

import (
	"activofijo_server/handling"
	"activofijo_server/lib"
	"activofijo_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListActivities handles GET /activities, the maintenance log newest first
func (acrm *ActivityRoutesManager) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseActivityListOptions(r)
	if err != nil {
		acrm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := acrm.activityService.ListActivities(ctx, opts)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch activities", acrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"activities": result.Activities,
			"pagination": result.Pagination,
			"count":      len(result.Activities),
		}),
		gecho.Send(),
	)
}

// CreateActivity handles POST /activities
func (acrm *ActivityRoutesManager) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.ActivityRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	activity, err := acrm.activityService.CreateActivity(ctx, req)
	if err != nil {
		handling.HandleServiceError(err, "Failed to log activity", acrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Activity logged successfully"),
		gecho.WithData(map[string]any{"activity": activity}),
		gecho.Send(),
	)
}

// DeleteActivity handles DELETE /activities/{id}
func (acrm *ActivityRoutesManager) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid activity id"),
			gecho.Send(),
		)
		return
	}

	if err := acrm.activityService.DeleteActivity(ctx, id); err != nil {
		handling.HandleServiceError(err, "Failed to delete activity", acrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Activity deleted successfully"),
		gecho.Send(),
	)
}
