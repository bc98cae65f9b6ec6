package viewing

import (
	"net/http"
	"realty/infras/otel"
	"realty/internal/domains/viewing/model"
	"realty/internal/domains/viewing/model/dto"
	"realty/internal/domains/viewing/service"
	"realty/shared"
	"realty/shared/constant"
	gDto "realty/shared/dto"
	"realty/shared/failure"
	"realty/shared/validator"
	"realty/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableColumns = []string{
	model.FieldViewingDate,
	model.FieldViewingTime,
	model.FieldStatus,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Viewing
	otel    otel.Otel
}

func New(service service.Viewing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/viewings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookViewing)
		routerGroup.Get("/", handler.GetViewings)
		routerGroup.Get("/{id}", handler.GetViewingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateViewingStatus)
	})
}

// BookViewing books a property viewing slot.
// @Summary Book a viewing
// @Description Book a viewing of a property. A slot already held by another non-cancelled viewing is rejected.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param request body dto.BookViewingRequest true "Viewing details"
// @Success 201 {object} response.Data[dto.ViewingResponse] "Booked viewing"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Time slot already booked"
// @Failure 500 {object} response.Error
// @Router /v1/viewings [post]
func (handler *Handler) BookViewing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookViewing")
	defer scope.End()

	req := dto.BookViewingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsConflict(err) {
			log.Info().Str("propertyID", req.PropertyID).Str("viewingTime", req.ViewingTime).Msg("viewing slot already booked")
		} else {
			log.Error().Err(err).Str("propertyID", req.PropertyID).Msg("failed to book viewing")
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Viewing booked " + viewing.ID)

	response.WithJSON(w, http.StatusCreated, viewing)
}

// GetViewings lists viewings.
// @Summary Get all viewings
// @Description Retrieve viewings with optional filtering and pagination.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param status query string false "Filter by status" Enums(scheduled, confirmed, completed, cancelled)
// @Param from query string false "Earliest viewing date (YYYY-MM-DD)"
// @Param to query string false "Latest viewing date (YYYY-MM-DD)"
// @Param reminder_sent query boolean false "Filter by reminder state"
// @Success 200 {object} response.Data[dto.GetViewingsResponse] "List of viewings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/viewings [get]
func (handler *Handler) GetViewings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViewings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(sortableColumns...)

	query := r.URL.Query()
	viewingFilter := dto.ViewingFilter{
		PropertyID:   query.Get(model.FieldPropertyID),
		Status:       query.Get(model.FieldStatus),
		From:         query.Get("from"),
		To:           query.Get("to"),
		ReminderSent: shared.ConvertStringToBool(query.Get(model.FieldReminderSent)),
	}

	if err := validator.ValidateStruct(&viewingFilter); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filterGroup, err := viewingFilter.ToFilterGroup()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	viewings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get viewings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewings)
}

// GetViewingByID retrieves a viewing by its ID.
// @Summary Get a viewing by ID
// @Tags Viewing
// @Produce json
// @Param id path string true "Viewing ID"
// @Success 200 {object} response.Data[dto.ViewingResponse] "Viewing details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/viewings/{id} [get]
func (handler *Handler) GetViewingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetViewingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	viewing, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("viewingID", id).Msg("failed to get viewing by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, viewing)
}

// UpdateViewingStatus moves a viewing to another status.
// @Summary Update viewing status
// @Description Confirm, complete or cancel a viewing. Cancelling frees the slot and notifies the visitor.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param id path string true "Viewing ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.ViewingResponse] "Updated viewing"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/viewings/{id}/status [patch]
func (handler *Handler) UpdateViewingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateViewingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	viewing, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("viewingID", id).Msg("failed to update viewing status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Viewing status changed to " + viewing.Status)

	response.WithJSON(w, http.StatusOK, viewing)
}
