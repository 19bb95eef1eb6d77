package entity

type Book struct {
	ID              string  `json:"id"`
	ISBN            string  `json:"isbn"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Publisher       string  `json:"publisher"`
	PublishYear     int     `json:"publish_year"`
	Category        string  `json:"category"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	TotalCopies     int     `json:"total_copies"`
	AvailableCopies int     `json:"available_copies"`
	CoverURL        string  `json:"cover_url,omitempty"`
}
