package entity

type Review struct {
	WorkerID int    `json:"worker_id"`
	Customer string `json:"customer"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
