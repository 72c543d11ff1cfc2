package product

// Product is a smartphone as served by the backend catalog. The client never
// mutates it.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	MRP          float64 `json:"mrp"`
	RAM          int     `json:"ram"`
	Storage      int     `json:"storage"`
	Display      string  `json:"display,omitempty"`
	Camera       string  `json:"camera,omitempty"`
	Battery      string  `json:"battery,omitempty"`
	Color        string  `json:"color"`
	Ratings      float64 `json:"ratings"`
	NumOfReviews int     `json:"numOfReviews"`
	Image        string  `json:"image,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// NewProductInput is the admin "add smartphone" form.
type NewProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	MRP         float64 `json:"mrp" validate:"required,gt=0"`
	RAM         int     `json:"ram" validate:"required,gt=0"`
	Storage     int     `json:"storage" validate:"required,gt=0"`
	Camera      string  `json:"camera" validate:"required"`
	Battery     string  `json:"battery" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Description string  `json:"description" validate:"required"`
	Color       string  `json:"color" validate:"required"`
	Display     string  `json:"display" validate:"required"`
}

// Find returns the product with the given id.
func Find(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
