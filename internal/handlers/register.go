package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"github.com/sbilibin2017/gw-user-registration/internal/services"
	"go.uber.org/zap"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, input models.RegistrationInput) (*models.UserRecord, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Validates name, Gmail address, password strength, 12-digit Aadhar, mobile and address, then stores the user with a bcrypt-hashed password.
// @Tags registration
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.RegisterErrorResponse "Malformed request body"
// @Failure 422 {object} models.RegisterErrorResponse "One or more fields are invalid"
// @Failure 500 {object} models.RegisterErrorResponse "Registration could not be stored"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.RegisterErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		_, err := svc.Register(r.Context(), req.Input())
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				resp := models.RegisterErrorResponse{
					Error:  "Invalid registration data",
					Fields: verr.Result.Messages(),
				}
				if verr.Result.EmailAndPasswordValid() {
					resp.Info = emailAndPasswordValidMessage
				}
				writeJSON(w, http.StatusUnprocessableEntity, resp)
			default:
				log.Errorw("internal server error", "error", err)
				writeJSON(w, http.StatusInternalServerError, models.RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
