package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-registration/internal/middlewares"
	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"github.com/sbilibin2017/gw-user-registration/internal/services"
	"go.uber.org/zap"
)

type formField struct {
	Name      string
	Label     string
	Type      string
	Multiline bool
	Value     string
	Error     string
}

type registerPage struct {
	Fields []formField
	Banner *banner
}

var fieldLabels = map[models.Field]string{
	models.FieldName:     "Name",
	models.FieldEmail:    "Email",
	models.FieldPassword: "Password",
	models.FieldAadhar:   "Aadhar Number",
	models.FieldMobile:   "Mobile Number",
	models.FieldAddress:  "Address",
}

// newRegisterPage builds the form view. The password value is never echoed back.
func newRegisterPage(input models.RegistrationInput, result *models.ValidationResult) registerPage {
	page := registerPage{Fields: make([]formField, 0, len(models.Fields))}
	for _, f := range models.Fields {
		ff := formField{
			Name:  string(f),
			Label: fieldLabels[f],
			Type:  "text",
			Value: input.Value(f),
		}
		switch f {
		case models.FieldPassword:
			ff.Type = "password"
			ff.Value = ""
		case models.FieldAddress:
			ff.Multiline = true
		}
		if result != nil {
			if fe, ok := result.Error(f); ok {
				ff.Error = fe.Message
			}
		}
		page.Fields = append(page.Fields, ff)
	}
	return page
}

// NewRegisterPageHandler renders an empty registration form.
func NewRegisterPageHandler(log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, log, http.StatusOK, "register.html", newRegisterPage(models.RegistrationInput{}, nil))
	}
}

// NewRegisterFormHandler handles a submitted registration form and re-renders
// it with field errors, a failure banner, or a success banner and empty fields.
func NewRegisterFormHandler(svc Registerer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Infow("form submitted", "request_id", middlewares.RequestIDFromContext(r.Context()))

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := r.ParseForm(); err != nil {
			log.Errorw("failed to parse form", "error", err)
			page := newRegisterPage(models.RegistrationInput{}, nil)
			page.Banner = &banner{Kind: bannerError, Message: genericFailureMessage}
			render(w, log, http.StatusBadRequest, "register.html", page)
			return
		}

		input := models.RegistrationInput{
			Name:     r.PostFormValue(string(models.FieldName)),
			Email:    r.PostFormValue(string(models.FieldEmail)),
			Password: r.PostFormValue(string(models.FieldPassword)),
			Aadhar:   r.PostFormValue(string(models.FieldAadhar)),
			Mobile:   r.PostFormValue(string(models.FieldMobile)),
			Address:  r.PostFormValue(string(models.FieldAddress)),
		}

		_, err := svc.Register(r.Context(), input)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				page := newRegisterPage(input, &verr.Result)
				if verr.Result.EmailAndPasswordValid() {
					page.Banner = &banner{Kind: bannerInfo, Message: emailAndPasswordValidMessage}
				}
				render(w, log, http.StatusUnprocessableEntity, "register.html", page)
				return
			}

			log.Errorw("registration failed", "error", err)
			page := newRegisterPage(input, nil)
			page.Banner = &banner{Kind: bannerError, Message: genericFailureMessage}
			render(w, log, http.StatusInternalServerError, "register.html", page)
			return
		}

		page := newRegisterPage(models.RegistrationInput{}, nil)
		page.Banner = &banner{
			Kind:          bannerSuccess,
			Message:       "Registration successful! You can now",
			ShowUsersLink: true,
		}
		render(w, log, http.StatusOK, "register.html", page)
	}
}
