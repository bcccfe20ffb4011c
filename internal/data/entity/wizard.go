package entity

type WizardStep int

const (
	StepServiceLocation WizardStep = 1
	StepWorkerSelection WizardStep = 2
	StepDetails         WizardStep = 3
)

// WizardState menyimpan progress multi-step booking form.
// Forward-only: 1 -> 2 -> 3, dengan explicit back transition.
type WizardState struct {
	Step      WizardStep `json:"step"`
	ServiceID int        `json:"service_id"` // 0 = belum dipilih
	City      string     `json:"city"`
	Area      string     `json:"area"`
	WorkerID  int        `json:"worker_id"` // 0 = belum dipilih
}

func NewWizardState(defaultCity string) WizardState {
	return WizardState{
		Step: StepServiceLocation,
		City: defaultCity,
	}
}
