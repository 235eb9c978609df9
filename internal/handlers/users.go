package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserLister returns registered users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

type usersPage struct {
	Users  []models.UserDB
	Banner *banner
}

// NewUsersHandler renders the list of registered users.
func NewUsersHandler(lister UserLister, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := lister.List(r.Context())
		if err != nil {
			log.Errorw("failed to list users", "error", err)
			render(w, log, http.StatusInternalServerError, "users.html", usersPage{
				Banner: &banner{Kind: bannerError, Message: genericFailureMessage},
			})
			return
		}

		render(w, log, http.StatusOK, "users.html", usersPage{Users: users})
	}
}
