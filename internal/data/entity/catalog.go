package entity

// ServiceCategory grouping workers by trade. Static seed data, immutable.
type ServiceCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// City yang dilayani. Static seed data, immutable.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
