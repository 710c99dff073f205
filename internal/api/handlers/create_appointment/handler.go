package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgUserNotFound       = "пользователь не найден"
	msgSundayClosed       = "воскресенье - выходной день, выберите другую дату"
	msgOutsideHours       = "время вне рабочих часов (09:00 - 20:00)"
	msgSlotTaken          = "это время уже занято, выберите другое"
)

type Handler struct {
	useCase      CreateAppointmentUseCase
	slotsUseCase GetAvailableSlotsUseCase
	service      AppointmentService
	logger       Logger
}

func NewHandler(
	useCase CreateAppointmentUseCase,
	slotsUseCase GetAvailableSlotsUseCase,
	service AppointmentService,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:      useCase,
		slotsUseCase: slotsUseCase,
		service:      service,
		logger:       logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSundayClosed):
			h.logger.Warn("POST /appointments - Sunday closed: user_id=%d, date=%s", req.UserID, req.Date)
			h.respondRejection(w, r, &req, http.StatusBadRequest, msgSundayClosed)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: user_id=%d, time=%s", req.UserID, req.StartTime)
			h.respondRejection(w, r, &req, http.StatusBadRequest, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, date=%s, time=%s",
				req.UserID, req.Date, req.StartTime)
			h.respondRejection(w, r, &req, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			h.logger.Warn("POST /appointments - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v",
				req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d", result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondRejection отвечает отказом правила вместе с данными для повторного
// показа формы: записями пользователя и сеткой слотов на запрошенную дату.
// Ошибки сбора контекста не меняют статус ответа - причина отказа важнее.
func (h *Handler) respondRejection(
	w http.ResponseWriter,
	r *http.Request,
	req *CreateAppointmentRequest,
	status int,
	message string,
) {
	appointments, err := h.service.GetUserAppointments(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("POST /appointments - Failed to fetch appointments for rejection context: user_id=%d, error=%v",
			req.UserID, err)
		appointments = nil
	}

	var slots *getAvailableSlots.Response
	if useCaseReq, parseErr := req.ToUseCaseRequest(); parseErr == nil {
		slots, err = h.slotsUseCase.Execute(r.Context(), &getAvailableSlots.Request{Date: useCaseReq.Date})
		if err != nil {
			h.logger.Error("POST /appointments - Failed to fetch slots for rejection context: date=%s, error=%v",
				req.Date, err)
			slots = nil
		}
	}

	handlers.RespondJSON(w, status, NewRejectionResponse(message, appointments, slots))
}
