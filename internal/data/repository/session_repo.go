package repository

import (
	"sync"

	"awami-saholat/internal/data/entity"

	"go.uber.org/zap"
)

// SessionRepository adalah single process-wide store untuk identity yang
// sedang login, filter preferences, dan wizard state. Setiap mutation
// adalah satu unit atomic di bawah mutex; persistence snapshot bukan
// tanggung jawab store ini (lihat usecase.AuthService).
type SessionRepository interface {
	Current() (*entity.User, entity.UserRole, bool)
	SetIdentity(user *entity.User, role entity.UserRole)
	ClearIdentity()

	SelectedCity() string
	SetSelectedCity(city string)
	SelectedService() int
	SetSelectedService(serviceID int)

	Wizard() entity.WizardState
	SetWizard(state entity.WizardState)
	ResetWizard()
}

type sessionRepository struct {
	mu sync.Mutex

	user *entity.User
	role entity.UserRole

	selectedCity    string
	selectedService int

	defaultCity string
	wizard      entity.WizardState

	log *zap.Logger
}

func NewSessionRepository(defaultCity string, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		selectedCity: defaultCity,
		defaultCity:  defaultCity,
		wizard:       entity.NewWizardState(defaultCity),
		log:          log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Current() (*entity.User, entity.UserRole, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.user == nil {
		return nil, "", false
	}
	copied := *r.user
	return &copied, r.role, true
}

// SetIdentity replaces identity dan role tanpa syarat.
func (r *sessionRepository) SetIdentity(user *entity.User, role entity.UserRole) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.user = &copied
	r.role = role
}

func (r *sessionRepository) ClearIdentity() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = nil
	r.role = ""
}

func (r *sessionRepository) SelectedCity() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectedCity
}

func (r *sessionRepository) SetSelectedCity(city string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedCity = city
}

func (r *sessionRepository) SelectedService() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectedService
}

func (r *sessionRepository) SetSelectedService(serviceID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedService = serviceID
}

func (r *sessionRepository) Wizard() entity.WizardState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wizard
}

func (r *sessionRepository) SetWizard(state entity.WizardState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wizard = state
}

func (r *sessionRepository) ResetWizard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wizard = entity.NewWizardState(r.defaultCity)
}
