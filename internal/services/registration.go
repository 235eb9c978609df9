package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=registration.go -destination=mock_registration.go -package=services

// ErrRegistrationFailed is returned when a valid registration could not be stored.
// The wrapped cause is for logs only.
var ErrRegistrationFailed = errors.New("registration failed")

// ValidationError is returned when one or more fields were rejected.
type ValidationError struct {
	Result models.ValidationResult
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Result.Errors))
	for _, f := range models.Fields {
		if _, ok := e.Result.Errors[f]; ok {
			fields = append(fields, string(f))
		}
	}
	return "invalid registration fields: " + strings.Join(fields, ", ")
}

// RegistrationValidator validates form input.
type RegistrationValidator interface {
	Validate(input models.RegistrationInput) models.ValidationResult
}

// UserWriter persists a new user.
type UserWriter interface {
	Save(ctx context.Context, user models.UserRecord) error
}

// PasswordHasher derives a one-way, salted hash of a password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// RegistrationService validates and stores user registrations.
type RegistrationService struct {
	validator   RegistrationValidator
	writer      UserWriter
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
	log         *zap.SugaredLogger
	now         func() time.Time
}

// NewRegistrationService creates a new RegistrationService.
// kafkaWriter may be nil, in which case no events are published.
func NewRegistrationService(
	validator RegistrationValidator,
	writer UserWriter,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
	log *zap.SugaredLogger,
) *RegistrationService {
	return &RegistrationService{
		validator:   validator,
		writer:      writer,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
		log:         log,
		now:         time.Now,
	}
}

// Register validates input and, when every field passes, stores the user with a hashed password.
//
// A *ValidationError is returned when fields were rejected; nothing is stored in that case.
// Errors wrapping ErrRegistrationFailed mean the input was valid but hashing or storing failed.
func (svc *RegistrationService) Register(ctx context.Context, input models.RegistrationInput) (*models.UserRecord, error) {
	input = input.Trimmed()

	result := svc.validator.Validate(input)
	if !result.Valid {
		for _, f := range models.Fields {
			if fe, ok := result.Error(f); ok {
				svc.log.Errorw("field validation failed", "field", f, "code", fe.Code, "reason", fe.Message)
			}
		}
		if result.EmailAndPasswordValid() {
			svc.log.Infow("email and password are valid, but other fields are not", "email", input.Email)
		}
		return nil, &ValidationError{Result: result}
	}

	svc.log.Infow("all validations passed, attempting to store data", "email", input.Email)

	hashedPassword, err := svc.hasher.Hash(input.Password)
	if err != nil {
		svc.log.Errorw("failed to hash password", "email", input.Email, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	user := models.UserRecord{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Aadhar:   input.Aadhar,
		Mobile:   input.Mobile,
		Address:  input.Address,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		svc.log.Errorw("failed to save user", "email", input.Email, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	svc.log.Infow("user registered successfully", "email", user.Email)
	svc.publishRegistered(ctx, user)

	return &user, nil
}

// publishRegistered publishes a user.registered event. Failures are logged and otherwise ignored.
func (svc *RegistrationService) publishRegistered(ctx context.Context, user models.UserRecord) {
	if svc.kafkaWriter == nil {
		svc.log.Debugw("Kafka writer not configured, skipping publishing", "email", user.Email)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:      uuid.New(),
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: svc.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		svc.log.Errorw("failed to marshal user registered event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: value,
		Time:  event.RegisteredAt,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		svc.log.Errorw("failed to publish user registered event", "event_id", event.EventID, "error", err)
		return
	}

	svc.log.Infow("user registered event published", "event_id", event.EventID)
}
