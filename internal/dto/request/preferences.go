package request

// PreferencesRequest updates UI-wide selection state: active city dan
// active service filter. Keduanya opsional.
type PreferencesRequest struct {
	City      *string `json:"city,omitempty"`
	ServiceID *int    `json:"service_id,omitempty"`
}
